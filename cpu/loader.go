package cpu

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// LoadBinary parses the binary-literal program format: one 8-digit binary
// literal per line, '#' starts a comment, blank lines are ignored. The
// resulting image is placed at address 0. An empty input yields an empty
// program, which the machine treats as an immediate halt.
func LoadBinary(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			prog = nil
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	prog = &Program{}

	addr := 0
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		text_comment := strings.Split(text, "#")
		line = strings.TrimSpace(text_comment[0])
		if len(line) == 0 {
			continue
		}

		var v64 uint64
		v64, err = strconv.ParseUint(line, 2, 8)
		if err != nil {
			err = ErrParseBinary(line)
			return
		}

		prog.Statements = append(prog.Statements, Statement{
			LineNo: lineno,
			Addr:   addr,
			Words:  []string{line},
			Bytes:  []uint8{uint8(v64)},
		})
		addr += 1
	}

	err = scanner.Err()

	return
}
