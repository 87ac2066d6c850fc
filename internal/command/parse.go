// Package command turns lines of user input into address book operations and
// maps their results to reply text.
package command

import "strings"

// Name identifies a shell command.
type Name string

const (
	Empty       Name = ""
	Hello       Name = "hello"
	Add         Name = "add"
	Change      Name = "change"
	Edit        Name = "edit"
	Phone       Name = "phone"
	RemovePhone Name = "remove-phone"
	Delete      Name = "delete"
	All         Name = "all"
	Help        Name = "help"
	Close       Name = "close"
	Exit        Name = "exit"
)

// Parse splits line into a lowercased command name and its
// whitespace-separated arguments. rest is the trimmed text after the
// command name.
func Parse(line string) (cmd Name, args []string, rest string) {
	trimmed := strings.TrimSpace(line)
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return Empty, nil, ""
	}
	rest = strings.TrimSpace(trimmed[len(fields[0]):])
	return Name(strings.ToLower(fields[0])), fields[1:], rest
}
