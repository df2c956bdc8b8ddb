// Package conversation implements the four-question flows behind the
// template and landing page generators. The server keeps no session: the
// caller sends the State back on every call.
package conversation

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"compkit/internal/logging"
)

// TotalSteps is the number of questions in every flow.
const TotalSteps = 4

// ErrMessageRequired is returned when a call carries no answer text.
var ErrMessageRequired = errors.New("message is required")

// State is the caller-carried conversation accumulator.
type State struct {
	CurrentStep int               `json:"currentStep"`
	TotalSteps  int               `json:"totalSteps"`
	Answers     map[string]string `json:"answers"`
}

// InitialState is the state assumed when the caller supplies none.
func InitialState() State {
	return State{TotalSteps: TotalSteps, Answers: map[string]string{}}
}

// Complete reports whether all answers have been collected.
func (s State) Complete() bool {
	return s.CurrentStep >= TotalSteps
}

// StepName names the state the conversation is in, for logs.
func (s State) StepName() string {
	if s.Complete() {
		return "COMPLETE"
	}
	return fmt.Sprintf("AWAITING_Q%d", s.CurrentStep+1)
}

// normalize copies s, fixes TotalSteps and clamps CurrentStep into range.
func (s State) normalize() State {
	out := State{
		CurrentStep: s.CurrentStep,
		TotalSteps:  TotalSteps,
		Answers:     make(map[string]string, len(s.Answers)+1),
	}
	maps.Copy(out.Answers, s.Answers)
	if out.CurrentStep < 0 {
		out.CurrentStep = 0
	}
	if out.CurrentStep > TotalSteps {
		out.CurrentStep = TotalSteps
	}
	return out
}

// Question is one step of a flow.
type Question struct {
	Key    string
	Prompt string
	// Examples are shown under the prompt.
	Examples []string
}

// Reply is the outcome of one Advance call.
type Reply struct {
	Result   string `json:"result"`
	State    State  `json:"conversationState"`
	Complete bool   `json:"complete"`
}

// Renderer turns a complete answer map into the final Markdown.
type Renderer func(answers map[string]string) string

// Flow is a fixed sequence of TotalSteps questions and a final renderer.
type Flow struct {
	name      string
	title     string
	intro     string
	questions [TotalSteps]Question
	render    Renderer
	logger    *logging.AppLogger
}

// Name returns the flow identifier ("template", "landing").
func (f *Flow) Name() string { return f.name }

// Title returns the human readable flow title.
func (f *Flow) Title() string { return f.title }

// Questions returns the flow's questions in order.
func (f *Flow) Questions() []Question {
	out := make([]Question, TotalSteps)
	copy(out, f.questions[:])
	return out
}

// Start returns the greeting and the first question, shown before the
// caller's first answer.
func (f *Flow) Start() string {
	return f.intro + "\n\n" + f.questionText(0)
}

// Advance consumes message as the answer to the current question. A nil
// state starts a new conversation. On the fourth answer, and on any call
// made with a complete state, the reply is the rendered result.
func (f *Flow) Advance(state *State, message string) (Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Reply{}, ErrMessageRequired
	}

	s := InitialState()
	if state != nil {
		s = state.normalize()
	}

	if s.Complete() {
		f.logger.Debug("Re-rendering completed conversation", "flow", f.name)
		return Reply{Result: f.render(s.Answers), State: s, Complete: true}, nil
	}

	from := s.StepName()
	s.Answers[f.questions[s.CurrentStep].Key] = message
	s.CurrentStep++
	f.logger.LogStateTransition(f.name, from, s.StepName())

	if s.Complete() {
		return Reply{Result: f.render(s.Answers), State: s, Complete: true}, nil
	}
	return Reply{Result: f.questionText(s.CurrentStep), State: s}, nil
}

func (f *Flow) questionText(step int) string {
	q := f.questions[step]
	var b strings.Builder
	fmt.Fprintf(&b, "**Question %d of %d:** %s", step+1, TotalSteps, q.Prompt)
	if len(q.Examples) > 0 {
		b.WriteString("\n\nFor example:\n")
		for _, e := range q.Examples {
			fmt.Fprintf(&b, "- %s\n", e)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
