package command

import "github.com/smileynet/assistant/internal/contact"

// Reply is the outcome of one handled line.
type Reply struct {
	Cmd  Name
	Text string
	Err  error // Set when the command failed; Text already holds the user-facing message.
	Quit bool
}

// Reply texts shared with callers and tests.
const (
	MsgHello          = "How can I help you?"
	MsgAdded          = "Contact added."
	MsgUpdated        = "Contact updated."
	MsgPhoneUpdated   = "Phone updated."
	MsgPhoneRemoved   = "Phone removed."
	MsgDeleted        = "Contact deleted."
	MsgNoContacts     = "No contacts saved."
	MsgGoodbye        = "Good bye!"
	MsgInvalidCommand = "Invalid command."
)

// Usage hints returned when a command is missing arguments.
const (
	usageAdd         = "Please provide a name and phone number."
	usageChange      = "Please provide a name and new phone number."
	usageEdit        = "Please provide a name, old phone number, and new phone number."
	usagePhone       = "Please provide a username."
	usageRemovePhone = "Please provide a name and phone number to remove."
	usageDelete      = "Please provide a name to delete."
)

// Handler dispatches parsed commands against an address book.
// It is meant to be driven by a single caller.
type Handler struct {
	book *contact.AddressBook
	help string
}

// Option configures a Handler.
type Option func(*Handler)

// WithHelp sets the text returned by the help command.
func WithHelp(text string) Option {
	return func(h *Handler) {
		h.help = text
	}
}

// NewHandler creates a Handler that operates on book.
func NewHandler(book *contact.AddressBook, opts ...Option) *Handler {
	h := &Handler{book: book}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Book returns the address book the handler operates on.
func (h *Handler) Book() *contact.AddressBook {
	return h.book
}

// Handle parses and executes line.
func (h *Handler) Handle(line string) Reply {
	cmd, args, rest := Parse(line)

	text, quit, err := h.dispatch(cmd, args, rest)
	if err != nil {
		return Reply{Cmd: cmd, Text: replyForError(err), Err: err}
	}
	return Reply{Cmd: cmd, Text: text, Quit: quit}
}

func (h *Handler) dispatch(cmd Name, args []string, rest string) (string, bool, error) {
	switch cmd {
	case Empty:
		return "", false, nil
	case Close, Exit:
		return MsgGoodbye, true, nil
	case Hello:
		return MsgHello, false, nil
	case Add:
		return h.add(args)
	case Change:
		return h.change(args)
	case Edit:
		return h.edit(args)
	case Phone:
		return h.phone(rest)
	case RemovePhone:
		return h.removePhone(args)
	case Delete:
		return h.delete(rest)
	case All:
		return h.all()
	case Help:
		return h.help, false, nil
	default:
		return MsgInvalidCommand, false, nil
	}
}

func (h *Handler) add(args []string) (string, bool, error) {
	if len(args) < 2 {
		return "", false, contact.MissingArguments(string(Add), usageAdd)
	}
	r := contact.NewRecord(args[0])
	if err := r.AddPhone(args[1]); err != nil {
		return "", false, err
	}
	h.book.AddRecord(r)
	return MsgAdded, false, nil
}

func (h *Handler) change(args []string) (string, bool, error) {
	if len(args) < 2 {
		return "", false, contact.MissingArguments(string(Change), usageChange)
	}
	r, err := h.find(args[0])
	if err != nil {
		return "", false, err
	}
	if err := r.ReplacePrimaryPhone(args[1]); err != nil {
		return "", false, err
	}
	return MsgUpdated, false, nil
}

func (h *Handler) edit(args []string) (string, bool, error) {
	if len(args) < 3 {
		return "", false, contact.MissingArguments(string(Edit), usageEdit)
	}
	r, err := h.find(args[0])
	if err != nil {
		return "", false, err
	}
	if err := r.EditPhone(args[1], args[2]); err != nil {
		return "", false, err
	}
	return MsgPhoneUpdated, false, nil
}

func (h *Handler) phone(name string) (string, bool, error) {
	if name == "" {
		return "", false, contact.MissingArguments(string(Phone), usagePhone)
	}
	r, err := h.find(name)
	if err != nil {
		return "", false, err
	}
	return r.String(), false, nil
}

func (h *Handler) removePhone(args []string) (string, bool, error) {
	if len(args) < 2 {
		return "", false, contact.MissingArguments(string(RemovePhone), usageRemovePhone)
	}
	r, err := h.find(args[0])
	if err != nil {
		return "", false, err
	}
	r.RemovePhone(args[1])
	return MsgPhoneRemoved, false, nil
}

func (h *Handler) delete(name string) (string, bool, error) {
	if name == "" {
		return "", false, contact.MissingArguments(string(Delete), usageDelete)
	}
	if err := h.book.Delete(name); err != nil {
		return "", false, err
	}
	return MsgDeleted, false, nil
}

func (h *Handler) all() (string, bool, error) {
	if h.book.Len() == 0 {
		return MsgNoContacts, false, nil
	}
	return h.book.String(), false, nil
}

func (h *Handler) find(name string) (*contact.Record, error) {
	r, ok := h.book.Find(name)
	if !ok {
		return nil, contact.NewError(contact.KindNotFound, "find", contact.MsgContactNotFound)
	}
	return r, nil
}

// replyForError picks the reply for a failed command by its kind.
func replyForError(err error) string {
	kind, _ := contact.KindOf(err)
	switch kind {
	case contact.KindInvalidFormat, contact.KindNotFound,
		contact.KindNoPhoneToReplace, contact.KindMissingArguments:
		return contact.Message(err)
	default:
		return "Error: " + err.Error()
	}
}
