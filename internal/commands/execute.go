package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Note    func(NoteArgs) (Result, error)
	Task    func(TaskArgs) (Result, error)
	Edit    func(EditArgs) (Result, error)
	Done    func(TargetArgs) (Result, error)
	Remove  func(TargetArgs) (Result, error)
	Undo    func() (Result, error)
	Mood    func(MoodArgs) (Result, error)
	Search  func(SearchArgs) (Result, error)
	Filter  func(FilterArgs) (Result, error)
	Color   func(TargetArgs) (Result, error)
	Shuffle func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeNote:
		if handlers.Note == nil {
			return missing(cmd.Type)
		}
		return handlers.Note(*cmd.Note)
	case TypeTask:
		if handlers.Task == nil {
			return missing(cmd.Type)
		}
		return handlers.Task(*cmd.Task)
	case TypeEdit:
		if handlers.Edit == nil {
			return missing(cmd.Type)
		}
		return handlers.Edit(*cmd.Edit)
	case TypeDone:
		if handlers.Done == nil {
			return missing(cmd.Type)
		}
		return handlers.Done(*cmd.Target)
	case TypeRemove:
		if handlers.Remove == nil {
			return missing(cmd.Type)
		}
		return handlers.Remove(*cmd.Target)
	case TypeColor:
		if handlers.Color == nil {
			return missing(cmd.Type)
		}
		return handlers.Color(*cmd.Target)
	case TypeUndo:
		if handlers.Undo == nil {
			return missing(cmd.Type)
		}
		return handlers.Undo()
	case TypeMood:
		if handlers.Mood == nil {
			return missing(cmd.Type)
		}
		return handlers.Mood(*cmd.Mood)
	case TypeSearch:
		if handlers.Search == nil {
			return missing(cmd.Type)
		}
		return handlers.Search(*cmd.Search)
	case TypeFilter:
		if handlers.Filter == nil {
			return missing(cmd.Type)
		}
		return handlers.Filter(*cmd.Filter)
	case TypeShuffle:
		if handlers.Shuffle == nil {
			return missing(cmd.Type)
		}
		return handlers.Shuffle()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func missing(t Type) (Result, error) {
	return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
