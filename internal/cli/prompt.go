package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aurum-pm/aurum/pkg/engine"
)

// prompt asks on the terminal whether a package's PKGBUILD should run.
// Pressing v opens the build file in a pager before asking again. Any
// answer other than an explicit yes or no abandons the package: running
// a build script the user has not clearly accepted is never safe.
type prompt struct {
	// in defaults to stdin; tests substitute a reader.
	in *bufio.Reader
}

func (p *prompt) Review(ctx context.Context, name, buildFile string) (engine.Decision, error) {
	if p.in == nil {
		p.in = bufio.NewReader(os.Stdin)
	}

	for {
		if err := ctx.Err(); err != nil {
			return engine.DecisionAbandon, err
		}

		fmt.Printf("%s install %s? %s ",
			styleIconInfo.Render(iconInfo),
			StyleHighlight.Render(name),
			StyleDim.Render("[v]iew PKGBUILD / [y]es / [n]o"))

		line, err := p.in.ReadString('\n')
		if err != nil {
			return engine.DecisionAbandon, nil
		}

		switch decide(line) {
		case answerView:
			if err := showPager(name, buildFile); err != nil {
				printWarning("cannot open PKGBUILD: %v", err)
			}
		case answerYes:
			return engine.DecisionAccept, nil
		case answerNo:
			return engine.DecisionDecline, nil
		default:
			return engine.DecisionAbandon, nil
		}
	}
}

type answer int

const (
	answerAbandon answer = iota
	answerView
	answerYes
	answerNo
)

func decide(line string) answer {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "v", "view":
		return answerView
	case "y", "yes":
		return answerYes
	case "n", "no":
		return answerNo
	default:
		return answerAbandon
	}
}
