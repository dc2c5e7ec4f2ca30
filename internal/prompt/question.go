// Package prompt defines the question descriptors a commit convention
// exposes and a terminal runner that collects answers for them.
//
// Questions are pure data: the convention declares what to ask and how to
// normalize the raw input, the runner owns presentation. This keeps the
// convention packages free of any terminal I/O.
package prompt

// Kind identifies how a question is presented and answered.
type Kind int

const (
	// KindSelect presents a fixed list of choices and accepts one.
	KindSelect Kind = iota

	// KindInput accepts free text on a single line.
	KindInput

	// KindConfirm accepts a yes/no answer.
	KindConfirm
)

// Choice is one selectable option of a KindSelect question.
// Value is what gets recorded as the answer; Label is what the user sees.
type Choice struct {
	Value string
	Label string
}

// Filter normalizes a raw input string before it is accepted as the answer.
// Returning an error rejects the input; the runner re-prompts.
type Filter func(text string) (string, error)

// Question describes a single input request.
type Question struct {
	Kind    Kind
	Name    string
	Message string

	// Choices apply to KindSelect only.
	Choices []Choice

	// Filter applies to KindInput only. Nil means accept input as-is
	// after trimming the trailing newline.
	Filter Filter

	// Multiline marks a KindInput question whose answer spans several
	// lines. The runner reads until a lone "." line or EOF.
	Multiline bool

	// Default applies to KindConfirm only.
	Default bool
}

// Answers holds collected responses keyed by question name.
// Confirm answers are stored as "true" or "false".
type Answers map[string]string

// Bool reports the answer to a confirm question.
func (a Answers) Bool(name string) bool {
	return a[name] == "true"
}
