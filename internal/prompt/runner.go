package prompt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Runner executes a question sequence on an interactive terminal.
type Runner struct {
	rl *readline.Instance
}

// NewRunner creates a Runner backed by a readline instance.
func NewRunner() (*Runner, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "> ",
		InterruptPrompt:   "^C",
		EOFPrompt:         "",
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Runner{rl: rl}, nil
}

// Close releases the underlying terminal state.
func (r *Runner) Close() error {
	return r.rl.Close()
}

// Run asks every question in order and returns the collected answers.
// Invalid answers (unknown choice number, rejected filter input) are
// reported and the question is asked again.
func (r *Runner) Run(questions []Question) (Answers, error) {
	answers := make(Answers, len(questions))
	for _, q := range questions {
		var (
			answer string
			err    error
		)
		switch q.Kind {
		case KindSelect:
			answer, err = r.askSelect(q)
		case KindConfirm:
			answer, err = r.askConfirm(q)
		default:
			answer, err = r.askInput(q)
		}
		if err != nil {
			return nil, err
		}
		answers[q.Name] = answer
	}
	return answers, nil
}

func (r *Runner) askSelect(q Question) (string, error) {
	cyan := color.New(color.FgCyan).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	fmt.Printf("%s %s\n", cyan("?"), q.Message)
	for i, c := range q.Choices {
		fmt.Printf("  %s %s\n", gray(fmt.Sprintf("%2d)", i+1)), c.Label)
	}

	for {
		line, err := r.readLine(fmt.Sprintf("Choice [1-%d]: ", len(q.Choices)))
		if err != nil {
			return "", err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil || n < 1 || n > len(q.Choices) {
			r.reportInvalid(fmt.Sprintf("enter a number between 1 and %d", len(q.Choices)))
			continue
		}
		return q.Choices[n-1].Value, nil
	}
}

func (r *Runner) askConfirm(q Question) (string, error) {
	cyan := color.New(color.FgCyan).SprintFunc()
	hint := "y/N"
	if q.Default {
		hint = "Y/n"
	}

	fmt.Printf("%s %s\n", cyan("?"), q.Message)
	for {
		line, err := r.readLine(fmt.Sprintf("[%s]: ", hint))
		if err != nil {
			return "", err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return strconv.FormatBool(q.Default), nil
		case "y", "yes":
			return "true", nil
		case "n", "no":
			return "false", nil
		}
		r.reportInvalid("answer y or n")
	}
}

func (r *Runner) askInput(q Question) (string, error) {
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Printf("%s %s\n", cyan("?"), q.Message)

	for {
		var raw string
		var err error
		if q.Multiline {
			raw, err = r.readMultiline()
		} else {
			raw, err = r.readLine("> ")
		}
		if err != nil {
			return "", err
		}

		if q.Filter == nil {
			return strings.TrimSpace(raw), nil
		}
		answer, filterErr := q.Filter(raw)
		if filterErr != nil {
			r.reportInvalid(filterErr.Error())
			continue
		}
		return answer, nil
	}
}

// readMultiline collects lines until a lone "." or EOF.
func (r *Runner) readMultiline() (string, error) {
	gray := color.New(color.FgHiBlack).SprintFunc()
	fmt.Printf("  %s\n", gray(`(finish with a single "." on its own line)`))
	r.rl.SetPrompt("> ")

	var lines []string
	for {
		line, err := r.rl.Readline()
		if err == io.EOF {
			break
		}
		if err == readline.ErrInterrupt {
			return "", fmt.Errorf("interrupted")
		}
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) == "." {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func (r *Runner) readLine(promptText string) (string, error) {
	r.rl.SetPrompt(promptText)
	line, err := r.rl.Readline()
	if err == readline.ErrInterrupt {
		return "", fmt.Errorf("interrupted")
	}
	if err == io.EOF {
		return "", fmt.Errorf("input closed")
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

func (r *Runner) reportInvalid(msg string) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Printf("  %s %s\n", red("✗"), msg)
}
