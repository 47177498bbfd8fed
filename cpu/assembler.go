package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":    "0",
	"MEM_SIZE":  fmt.Sprintf("%v", MEM_SIZE),
	"STACK_TOP": fmt.Sprintf("%v", SP_RESET),
	"REG_FL":    fmt.Sprintf("%v", REG_FL),
	"REG_SP":    fmt.Sprintf("%v", REG_SP),
}

// Assembler is a single pass assembler for the LS-8 instruction set.
type Assembler struct {
	Verbose   bool        // If set, verbosely logs the assembler actions.
	Statement []Statement // List of generated statements.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to program addresses.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// regMap maps register names to register indices.
var regMap = map[string]uint8{
	"r0": 0,
	"r1": 1,
	"r2": 2,
	"r3": 3,
	"r4": 4,
	"r5": 5,
	"r6": 6,
	"r7": 7,
	"fl": REG_FL,
	"sp": REG_SP,
}

// opcodeMap maps mnemonics to opcode bytes.
var opcodeMap = map[string]Opcode{
	"HLT":  HLT,
	"RET":  RET,
	"PUSH": PUSH,
	"POP":  POP,
	"PRN":  PRN,
	"CALL": CALL,
	"JMP":  JMP,
	"JEQ":  JEQ,
	"JNE":  JNE,
	"LDI":  LDI,
	"ADD":  ADD,
	"SUB":  SUB,
	"MUL":  MUL,
	"CMP":  CMP,
}

// valueOf returns the byte value of a simple word. Negative values wrap
// into [0, 256).
func (asm *Assembler) valueOf(word string) (value uint8, err error) {
	v64, perr := strconv.ParseInt(word, 0, 16)
	if perr != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 < -128 || v64 > 255 {
		err = ErrParseNumber(word)
		return
	}

	value = uint8(v64)
	return
}

// registerOf returns the register index of a word.
func (asm *Assembler) registerOf(word string) (reg uint8, err error) {
	reg, ok := regMap[strings.ToLower(word)]
	if !ok {
		err = ErrRegisterInvalid
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, verr := strconv.ParseInt(str, 0, 64)
		if verr != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
	}
	return
}

// parseLine expands a single line into assembly words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	// Check for equates next
	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.currentAddr()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	return
}

// currentAddr gets the address one past the last emitted byte.
func (asm *Assembler) currentAddr() int {
	if len(asm.Statement) == 0 {
		return 0
	}

	last := asm.Statement[len(asm.Statement)-1]

	return last.Addr + len(last.Bytes)
}

// parseWords encodes the words of a line into instruction bytes.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	if len(words) == 0 {
		return
	}

	initial_words := slices.Clone(words)

	var bytes []uint8
	var label string

	// .byte VALUE...
	if words[0] == ".byte" {
		if len(words) < 2 {
			err = ErrByteSyntax
			return
		}
		for _, word := range words[1:] {
			var value uint8
			value, err = asm.valueOf(word)
			if err != nil {
				return
			}
			bytes = append(bytes, value)
		}
		asm.append(lineno, initial_words, bytes, "")
		return
	}

	op, ok := opcodeMap[strings.ToUpper(words[0])]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	args := words[1:]
	if len(args) < op.Operands() {
		err = ErrOperandMissing
		return
	}
	if len(args) > op.Operands() {
		err = ErrOperandExtra
		return
	}

	bytes = append(bytes, uint8(op))

	if op == LDI {
		// LDI takes a register and a literal. The literal may be a
		// label, resolved in the final link pass.
		var reg uint8
		reg, err = asm.registerOf(args[0])
		if err != nil {
			return
		}
		bytes = append(bytes, reg)

		value, verr := asm.valueOf(args[1])
		if verr != nil {
			label = args[1]
			value = 0
		}
		bytes = append(bytes, value)
	} else {
		// All other operands are register indices.
		for _, arg := range args {
			var reg uint8
			reg, err = asm.registerOf(arg)
			if err != nil {
				return
			}
			bytes = append(bytes, reg)
		}
	}

	asm.append(lineno, initial_words, bytes, label)
	return
}

// append emits a statement at the current address.
func (asm *Assembler) append(lineno int, words []string, bytes []uint8, label string) {
	asm.Statement = append(asm.Statement, Statement{
		LineNo:    lineno,
		Addr:      asm.currentAddr(),
		Words:     words,
		Bytes:     bytes,
		LinkLabel: label,
	})
}

// Parse parses an input stream into a Program containing statements.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Statement = asm.Statement[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of label operands.
	for n := range asm.Statement {
		st := &asm.Statement[n]

		if len(st.LinkLabel) == 0 {
			continue
		}
		addr, ok := asm.Label[st.LinkLabel]
		if !ok {
			err = ErrLabelMissing(st.LinkLabel)
			return
		}
		st.Bytes[len(st.Bytes)-1] = uint8(addr)
	}

	prog = &Program{
		Statements: slices.Clone(asm.Statement),
	}

	return
}
