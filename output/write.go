package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/katalvlaran/secretsanta/registry"
	"github.com/katalvlaran/secretsanta/santa"
)

// DefaultFileName is the list file used when none is configured.
const DefaultFileName = "SecretSantaList.txt"

// Separator closes every list written to a file.
var Separator = strings.Repeat("~", 20)

// Options controls where and how a list is written.
type Options struct {
	Order         Order
	PrintToScreen bool
	WriteToFile   bool

	// Append adds to FileName instead of truncating it.
	Append bool

	// FileName defaults to DefaultFileName.
	FileName string
}

// DefaultOptions prints to screen in family order and writes nothing.
func DefaultOptions() Options {
	return Options{
		Order:         FamilyOrder,
		PrintToScreen: true,
		FileName:      DefaultFileName,
	}
}

// Write renders list once and sends it to screen (when PrintToScreen) and to
// the list file (when WriteToFile).
//
// File layout per list:
//
//	List <id>            (only when the list carries an ID)
//	Giver → Receiver
//	...
//	<blank line>
//	~~~~~~~~~~~~~~~~~~~~
//	<blank line>
func Write(screen io.Writer, list santa.SantasList, reg *registry.Registry, opts Options) error {
	text, err := Format(list, reg, opts.Order)
	if err != nil {
		return err
	}

	if opts.PrintToScreen && screen != nil {
		if _, err = fmt.Fprintf(screen, "\n%s\n", text); err != nil {
			return fmt.Errorf("output: screen: %w", err)
		}
	}
	if !opts.WriteToFile {
		return nil
	}

	var name = opts.FileName
	if name == "" {
		name = DefaultFileName
	}
	return writeFile(name, opts.Append, list.ID, text)
}

func writeFile(name string, appendMode bool, id uuid.UUID, text string) (err error) {
	var flags = os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(name, flags, 0o644)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("output: %w", cerr)
		}
	}()

	var b strings.Builder
	if id != uuid.Nil {
		fmt.Fprintf(&b, "List %s\n", id)
	}
	b.WriteString(text)
	b.WriteString("\n")
	b.WriteString(Separator)
	b.WriteString("\n\n")

	if _, err = io.WriteString(f, b.String()); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}
