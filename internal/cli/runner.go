package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store/taskstore"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Exit codes: 0 ok, 1 operation error, 2 usage error.
const (
	codeOK    = 0
	codeError = 1
	codeUsage = 2
)

// Runner executes script commands against a store.
type Runner struct {
	Store   *taskstore.Store
	Out     io.Writer
	Err     io.Writer
	Grouped bool // list output with To Do / Done headers

	undo *model.Snapshot // last single delete, cleared once restored
}

// RunScript executes one command per line. Blank lines and lines starting
// with '#' are skipped. Every line runs; the worst exit code is returned.
func (r *Runner) RunScript(in io.Reader) int {
	code := codeOK
	sc := bufio.NewScanner(in)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if c := r.Exec(strings.Fields(line)); c != codeOK {
			fmt.Fprintln(r.Err, ui.Current().Muted.Render(fmt.Sprintf("  at line %d: %s", lineNo, line)))
			code = max(code, c)
		}
	}
	if err := sc.Err(); err != nil {
		ui.Fail(r.Err, "read script: "+err.Error())
		return max(code, codeError)
	}
	return code
}

// Exec dispatches a single command and returns an exit code.
func (r *Runner) Exec(args []string) int {
	if len(args) == 0 {
		return codeOK
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help":
		fmt.Fprint(r.Out, ScriptHelp)
		return codeOK

	case "ls":
		r.list()
		return codeOK

	case "stats":
		fmt.Fprintln(r.Out, ui.StatsLine(r.Store.Stats()))
		return codeOK

	case "add":
		if len(a) == 0 {
			ui.Fail(r.Err, "usage: add [high|medium|low] <title...>")
			return codeUsage
		}
		p := model.Medium
		if len(a) > 1 {
			if parsed, err := model.ParsePriority(a[0]); err == nil {
				p, a = parsed, a[1:]
			}
		}
		return r.doAdd(strings.Join(a, " "), p)

	case "edit":
		if len(a) < 2 {
			ui.Fail(r.Err, "usage: edit <id> <high|medium|low> <title...>")
			return codeUsage
		}
		id, code := parseID(r.Err, cmd, a[0])
		if code != codeOK {
			return code
		}
		p, err := model.ParsePriority(a[1])
		if err != nil {
			ui.Fail(r.Err, "edit: "+err.Error())
			return codeUsage
		}
		return r.doEdit(id, strings.Join(a[2:], " "), p)

	case "toggle", "done":
		if len(a) != 1 {
			ui.Fail(r.Err, "usage: toggle <id>")
			return codeUsage
		}
		id, code := parseID(r.Err, cmd, a[0])
		if code != codeOK {
			return code
		}
		return r.doToggle(id)

	case "rm":
		if len(a) != 1 {
			ui.Fail(r.Err, "usage: rm <id>")
			return codeUsage
		}
		id, code := parseID(r.Err, cmd, a[0])
		if code != codeOK {
			return code
		}
		return r.doRemove(id)

	case "undo":
		return r.doUndo()

	case "clear-done":
		return r.doClearDone()

	case "mark-all":
		if len(a) != 1 || (a[0] != "done" && a[0] != "todo") {
			ui.Fail(r.Err, "usage: mark-all done|todo")
			return codeUsage
		}
		return r.doMarkAll(a[0] == "done")
	}

	ui.Fail(r.Err, "unknown command: "+cmd)
	return codeUsage
}

const ScriptHelp = `Script commands (one per line, # starts a comment):

  add [high|medium|low] <title...>      Add a task (priority defaults to medium)
  edit <id> <high|medium|low> <title...> Change a task's title and priority
  toggle <id>                           Flip a task between to do and done
  rm <id>                               Delete a task (undo restores it)
  undo                                  Restore the last deleted task
  clear-done                            Delete every completed task (no undo)
  mark-all done|todo                    Mark every task done or not done
  ls                                    Print the grouped list
  stats                                 Print totals and progress

Example:
  add high Fix bug
  add low Buy milk
  toggle 1
  ls
`

func parseID(w io.Writer, cmd, s string) (int, int) {
	n, err := strconv.Atoi(s)
	if err != nil {
		ui.Fail(w, cmd+": not a number: "+s)
		return 0, codeUsage
	}
	return n, codeOK
}

// -------------- command impls ----------------

func (r *Runner) list() {
	ui.Panel(r.Out, ui.Summary(r.Store.Rows(), r.Store.Stats(), r.Grouped))
}

// storeFailure reports a store error and maps it to an exit code.
func (r *Runner) storeFailure(op string, err error) int {
	ui.Fail(r.Err, op+": "+err.Error())
	if errors.Is(err, taskstore.ErrNotFound) {
		fmt.Fprintln(r.Err, ui.Current().Muted.Render("Hint: run `ls` to see valid ids"))
	}
	return codeError
}

func (r *Runner) doAdd(title string, p model.Priority) int {
	t, err := r.Store.Add(title, p)
	if err != nil {
		return r.storeFailure("add", err)
	}
	ui.OK(r.Out, fmt.Sprintf("added #%d", t.ID))
	return codeOK
}

func (r *Runner) doEdit(id int, title string, p model.Priority) int {
	if _, err := r.Store.Edit(id, title, p); err != nil {
		return r.storeFailure("edit", err)
	}
	ui.OK(r.Out, fmt.Sprintf("updated #%d", id))
	return codeOK
}

func (r *Runner) doToggle(id int) int {
	t, err := r.Store.Toggle(id)
	if err != nil {
		return r.storeFailure("toggle", err)
	}
	state := "to do"
	if t.Completed {
		state = "done"
	}
	ui.OK(r.Out, fmt.Sprintf("#%d marked %s", id, state))
	return codeOK
}

func (r *Runner) doRemove(id int) int {
	snap, err := r.Store.Delete(id)
	if err != nil {
		return r.storeFailure("rm", err)
	}
	r.undo = &snap
	ui.OK(r.Out, fmt.Sprintf("deleted #%d (undo to restore)", id))
	return codeOK
}

func (r *Runner) doUndo() int {
	if r.undo == nil {
		ui.Fail(r.Err, "undo: nothing to undo")
		return codeError
	}
	t, err := r.Store.Restore(*r.undo)
	r.undo = nil
	if err != nil {
		return r.storeFailure("undo", err)
	}
	ui.OK(r.Out, fmt.Sprintf("restored #%d", t.ID))
	return codeOK
}

func (r *Runner) doClearDone() int {
	n := r.Store.DeleteCompleted()
	if n == 0 {
		fmt.Fprintln(r.Out, ui.Current().Muted.Render("no completed tasks to delete"))
		return codeOK
	}
	ui.OK(r.Out, fmt.Sprintf("%d task(s) deleted", n))
	return codeOK
}

func (r *Runner) doMarkAll(done bool) int {
	if r.Store.Len() == 0 {
		fmt.Fprintln(r.Out, ui.Current().Muted.Render("no tasks available"))
		return codeOK
	}
	n := r.Store.MarkAll(done)
	state := "to do"
	if done {
		state = "done"
	}
	ui.OK(r.Out, fmt.Sprintf("%d task(s) marked %s", n, state))
	return codeOK
}
