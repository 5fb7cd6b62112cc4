package vim

import "fmt"

// Action is what a key press produces once the grammar completes.
// It is one of Move, Operation or Command.
type Action interface {
	isAction()
	fmt.Stringer
}

// Move is a bare motion with no operator.
type Move struct {
	Count  int
	Motion Motion
}

// Operation is an operator applied over a motion.
type Operation struct {
	Count    int
	Operator Operator
	Motion   Motion
}

// Command is submitted command-line text.
type Command struct {
	Text string
}

func (Move) isAction()      {}
func (Operation) isAction() {}
func (Command) isAction()   {}

func (a Move) String() string {
	return fmt.Sprintf("Move{%d %s}", a.Count, a.Motion)
}

func (a Operation) String() string {
	return fmt.Sprintf("Operation{%d %s %s}", a.Count, a.Operator, a.Motion)
}

func (a Command) String() string {
	return fmt.Sprintf("Command{%q}", a.Text)
}
