package commands

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/diario/internal/model"
)

type Type string

const (
	TypeNote    Type = "note"
	TypeTask    Type = "task"
	TypeEdit    Type = "edit"
	TypeDone    Type = "done"
	TypeRemove  Type = "rm"
	TypeUndo    Type = "undo"
	TypeMood    Type = "mood"
	TypeSearch  Type = "search"
	TypeFilter  Type = "filter"
	TypeColor   Type = "color"
	TypeShuffle Type = "shuffle"
)

// Verbs lists the palette verbs in help order.
var Verbs = []Type{TypeNote, TypeTask, TypeEdit, TypeDone, TypeRemove, TypeUndo, TypeMood, TypeSearch, TypeFilter, TypeColor, TypeShuffle}

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type NoteArgs struct {
	Title   string
	Content string
}

type TaskArgs struct {
	Text  string
	Date  string
	Steps []string
}

// ClearDate is the @-token that removes a task's date on edit. An edit
// without any @-token keeps the current date.
const ClearDate = "-"

type EditArgs struct {
	ID   string
	Text string
	Date string
}

// TargetArgs names the item a done/rm/color command acts on.
type TargetArgs struct {
	ID string
}

type MoodArgs struct {
	Emoji string
}

type SearchArgs struct {
	Query string
}

type FilterArgs struct {
	Filter model.TaskFilter
}

type Command struct {
	Type   Type
	Raw    string
	Note   *NoteArgs
	Task   *TaskArgs
	Edit   *EditArgs
	Target *TargetArgs
	Mood   *MoodArgs
	Search *SearchArgs
	Filter *FilterArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	head, rest, _ := strings.Cut(raw, " ")
	head = strings.ToLower(head)
	rest = strings.TrimSpace(rest)

	switch Type(head) {
	case TypeNote:
		return parseNote(input, rest)
	case TypeTask:
		return parseTask(input, rest)
	case TypeEdit:
		return parseEdit(input, rest)
	case TypeDone, TypeRemove, TypeColor:
		return parseTarget(input, Type(head), rest)
	case TypeUndo, TypeShuffle:
		return Command{Type: Type(head), Raw: input}, nil
	case TypeMood:
		return parseMood(input, rest)
	case TypeSearch:
		return Command{Type: TypeSearch, Raw: input, Search: &SearchArgs{Query: rest}}, nil
	case TypeFilter:
		return parseFilter(input, rest)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseNote reads "title | content".
func parseNote(raw, rest string) (Command, error) {
	title, content, ok := strings.Cut(rest, "|")
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if !ok || title == "" || content == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "note requires \"title | content\""}
	}
	return Command{Type: TypeNote, Raw: raw, Note: &NoteArgs{Title: title, Content: content}}, nil
}

// parseTask reads "text [@date] [; step]...".
func parseTask(raw, rest string) (Command, error) {
	segments := strings.Split(rest, ";")
	text, date := splitDate(segments[0])
	if text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "task requires text"}
	}
	steps := model.NormalizeSteps(segments[1:])
	if len(steps) > model.MaxTaskSteps {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("task accepts at most %d steps", model.MaxTaskSteps)}
	}
	return Command{Type: TypeTask, Raw: raw, Task: &TaskArgs{Text: text, Date: date, Steps: steps}}, nil
}

func parseEdit(raw, rest string) (Command, error) {
	id, body, _ := strings.Cut(rest, " ")
	text, date := splitDate(body)
	if id == "" || text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "edit requires id and text"}
	}
	return Command{Type: TypeEdit, Raw: raw, Edit: &EditArgs{ID: id, Text: text, Date: date}}, nil
}

func parseTarget(raw string, typ Type, rest string) (Command, error) {
	fields := strings.Fields(rest)
	if len(fields) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires exactly one id", typ)}
	}
	return Command{Type: typ, Raw: raw, Target: &TargetArgs{ID: fields[0]}}, nil
}

func parseMood(raw, rest string) (Command, error) {
	if rest == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "mood requires an emoji"}
	}
	return Command{Type: TypeMood, Raw: raw, Mood: &MoodArgs{Emoji: rest}}, nil
}

func parseFilter(raw, rest string) (Command, error) {
	filter, err := model.ParseTaskFilter(rest)
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter must be all, completed or incomplete"}
	}
	return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{Filter: filter}}, nil
}

// splitDate pulls a trailing "@date" token off s.
func splitDate(s string) (text, date string) {
	fields := strings.Fields(s)
	if n := len(fields); n > 0 && strings.HasPrefix(fields[n-1], "@") {
		date = strings.TrimPrefix(fields[n-1], "@")
		fields = fields[:n-1]
	}
	return strings.Join(fields, " "), date
}
