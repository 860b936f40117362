// Package menu implements the interactive console loop editing export settings.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/umputun/chatpick/pkg/domain"
)

// ErrInputClosed is returned when input ends before settings are complete
var ErrInputClosed = errors.New("input closed")

// Store is the settings holder edited by the menu
type Store interface {
	Snapshot() []string
	Complete() bool
	Set(field domain.Field, value string) error
}

// Params configures the menu
type Params struct {
	In       io.Reader
	Out      io.Writer
	Messages Messages
	NoColor  bool
}

// Menu renders settings, reads commands and dispatches field edits
type Menu struct {
	store Store
	in    *bufio.Reader
	out   io.Writer
	msg   Messages

	promptColor *color.Color
	errColor    *color.Color
	valueColor  *color.Color
}

// New makes a menu over the store. Empty Messages default to Russian.
func New(store Store, params Params) *Menu {
	res := &Menu{
		store:       store,
		in:          bufio.NewReader(params.In),
		out:         params.Out,
		msg:         params.Messages,
		promptColor: color.New(color.FgHiGreen),
		errColor:    color.New(color.FgHiRed),
		valueColor:  color.New(color.Bold),
	}
	if res.msg.Prompt == "" {
		res.msg = Russian
	}
	if params.NoColor {
		res.promptColor.DisableColor()
		res.errColor.DisableColor()
		res.valueColor.DisableColor()
	}
	return res
}

// Run loops until empty input is entered with all settings complete
func (m *Menu) Run() error {
	for {
		m.print("\n")
		m.promptColor.Fprintln(m.out, m.msg.Prompt)
		line, err := m.readLine()
		if err != nil {
			return err
		}

		switch cmd := strings.TrimSpace(line); cmd {
		case "":
			if m.store.Complete() {
				log.Printf("[DEBUG] settings complete")
				return nil
			}
			m.fail(m.msg.Incomplete)
			m.PrintSettings()
		case "list":
			m.PrintSettings()
		default:
			field, ok := m.selector(cmd)
			if !ok {
				m.fail(m.msg.InvalidInput)
				continue
			}
			if err := m.EditField(field); err != nil {
				return err
			}
		}
	}
}

// PrintSettings shows numbered fields with their current values
func (m *Menu) PrintSettings() {
	m.print("\n")
	for i, value := range m.store.Snapshot() {
		m.print(fmt.Sprintf("%d) %s %s\n", i+1, m.msg.Labels[i], m.valueColor.Sprint(value)))
	}
}

// EditField prompts for the field until the value is accepted by the store.
// Blank input and malformed dates are reported and asked again, other
// store errors are returned.
func (m *Menu) EditField(field domain.Field) error {
	for {
		m.print(m.msg.Labels[field] + " ")
		line, err := m.readLine()
		if err != nil {
			return err
		}

		value := strings.TrimSpace(line)
		if value == "" {
			m.fail(m.msg.EmptyField)
			continue
		}

		err = m.store.Set(field, value)
		if errors.Is(err, domain.ErrMalformedDate) {
			log.Printf("[DEBUG] %s rejected: %v", field, err)
			m.fail(m.msg.WrongFormat)
			continue
		}
		if err != nil {
			return fmt.Errorf("set %s: %w", field, err)
		}
		return nil
	}
}

// selector maps "1".."5" to a field
func (m *Menu) selector(cmd string) (domain.Field, bool) {
	n, err := strconv.Atoi(cmd)
	if err != nil || n < 1 || n > len(domain.Fields) || strconv.Itoa(n) != cmd {
		return 0, false
	}
	return domain.Fields[n-1], true
}

func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (m *Menu) fail(msg string) {
	m.errColor.Fprintln(m.out, msg)
}

func (m *Menu) print(s string) {
	fmt.Fprint(m.out, s)
}
