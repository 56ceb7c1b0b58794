package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rosatisoft/axioma-criterion-engine/internal/domain"
	"github.com/rosatisoft/axioma-criterion-engine/internal/service"
)

// prompter reads interactive answers line by line. EOF reads as an empty
// answer, which the interview accepts without applying.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
	eof bool
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) text(prompt string) string {
	fmt.Fprintf(p.out, "%s\n> ", prompt)
	if p.eof || !p.in.Scan() {
		p.eof = true
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

func (p *prompter) yesNo(prompt string) bool {
	for {
		switch strings.ToLower(p.text(prompt + " (s/n)")) {
		case "s", "si", "sí", "y", "yes":
			return true
		case "n", "no":
			return false
		}
		if p.eof {
			return false
		}
		fmt.Fprintln(p.out, "Por favor responde con 's' o 'n'.")
	}
}

func (p *prompter) level(prompt string) domain.RiskLevel {
	for {
		lvl := service.NormalizeRiskLevel(p.text(prompt + " (bajo/medio/alto)"))
		if domain.ValidRiskLevel(string(lvl)) {
			return lvl
		}
		if p.eof {
			return domain.RiskMedium
		}
		fmt.Fprintln(p.out, "Por favor responde 'bajo', 'medio' o 'alto'.")
	}
}
