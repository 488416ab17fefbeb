package workload

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/inference-sim/schedsim/sim"
)

// Prompter reads a process set from an interactive terminal session.
// Input is whitespace-separated, so a row may be typed on one line or several.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter returns a Prompter reading answers from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Prompter{scanner: scanner, out: out}
}

func (pr *Prompter) readInt(what string) (int64, error) {
	if !pr.scanner.Scan() {
		if err := pr.scanner.Err(); err != nil {
			return 0, fmt.Errorf("reading %s: %w", what, err)
		}
		return 0, fmt.Errorf("%w: unexpected end of input reading %s", sim.ErrInvalidInput, what)
	}
	tok := pr.scanner.Text()
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not an integer", sim.ErrInvalidInput, what, tok)
	}
	return v, nil
}

// Processes prompts for a process count followed by the arrival and burst time of
// each process, plus its priority when withPriority is set.
func (pr *Prompter) Processes(withPriority bool) ([]*sim.Process, error) {
	fmt.Fprint(pr.out, "Enter number of processes : ")
	n, err := pr.readInt("number of processes")
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: number of processes must be positive, got %d", sim.ErrEmptyInput, n)
	}

	procs := make([]*sim.Process, 0, n)
	for id := 1; id <= int(n); id++ {
		if withPriority {
			fmt.Fprintf(pr.out, "P%d At BT Priority : ", id)
		} else {
			fmt.Fprintf(pr.out, "P%d At BT : ", id)
		}
		arrival, err := pr.readInt(fmt.Sprintf("P%d arrival time", id))
		if err != nil {
			return nil, err
		}
		burst, err := pr.readInt(fmt.Sprintf("P%d burst time", id))
		if err != nil {
			return nil, err
		}
		var priority int64
		if withPriority {
			if priority, err = pr.readInt(fmt.Sprintf("P%d priority", id)); err != nil {
				return nil, err
			}
		}
		p := sim.NewProcess(id, arrival, burst, priority)
		if err := p.Validate(); err != nil {
			return nil, err
		}
		procs = append(procs, p)
	}
	return procs, nil
}

// Quantum prompts for the round robin time quantum.
func (pr *Prompter) Quantum() (int64, error) {
	fmt.Fprint(pr.out, "Enter Time Quantum: ")
	q, err := pr.readInt("time quantum")
	if err != nil {
		return 0, err
	}
	if q <= 0 {
		return 0, fmt.Errorf("%w: time quantum must be positive, got %d", sim.ErrInvalidInput, q)
	}
	return q, nil
}

// ReadInteractive prompts for everything policy needs: the process set, priorities
// for the priority policies, and the quantum for round robin (0 otherwise).
func ReadInteractive(in io.Reader, out io.Writer, policy string) ([]*sim.Process, int64, error) {
	pr := NewPrompter(in, out)
	procs, err := pr.Processes(sim.UsesPriority(policy))
	if err != nil {
		return nil, 0, err
	}
	if policy != sim.PolicyRoundRobin {
		return procs, 0, nil
	}
	q, err := pr.Quantum()
	if err != nil {
		return nil, 0, err
	}
	return procs, q, nil
}
