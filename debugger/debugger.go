// Package debugger provides an interactive single-step TUI over a running
// cpu.Cpu, built on bubbletea and lipgloss.
package debugger

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"mos6502/cpu"
	"mos6502/mem"
	"mos6502/opcode"
)

type model struct {
	cpu    *cpu.Cpu
	offset uint16
	lines  map[uint16]int // emitted PC -> source line, from the assembler
	prevPC uint16
	err    error
	halted bool
}

// Run starts an interactive TUI over c, which must already have its
// program loaded at offset and its program counter set there. lines may be
// nil when no source is available. Space or "j" single-steps one
// instruction; "q" quits.
func Run(c *cpu.Cpu, offset uint16, lines map[uint16]int) error {
	m, err := tea.NewProgram(model{cpu: c, offset: offset, lines: lines}).Run()
	if err != nil {
		return err
	}
	final := m.(model)
	return final.err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case " ", "j":
			if m.halted {
				return m, nil
			}
			m.prevPC = m.cpu.ProgramCounter
			halted, err := m.cpu.Step()
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.halted = halted
		}
	}
	return m, nil
}

// renderPage renders a single 16-byte row of the address space, with the
// current program counter bracketed.
func (m model) renderPage(b *mem.Bus, start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		v := b.Read(addr)
		if addr == m.cpu.ProgramCounter {
			s += fmt.Sprintf("[%02x] ", v)
		} else {
			s += fmt.Sprintf(" %02x  ", v)
		}
	}
	return s
}

func (m model) status() string {
	f := m.cpu.Flags
	var flags string
	for _, set := range []bool{f.Negative, f.Overflow, f.Unused, f.Break, f.Decimal, f.Interrupt, f.Zero, f.Carry} {
		if set {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
N V U B D I Z C
`,
		m.cpu.ProgramCounter, m.prevPC,
		m.cpu.Accumulator, m.cpu.X, m.cpu.Y, m.cpu.Stack,
	) + flags
}

// pageTable renders the first rows of the zero page, then a five-row window
// over the program region, following the PC once it walks past the load
// offset.
func (m model) pageTable(b *mem.Bus) string {
	header := "page | "
	for i := 0; i < 16; i++ {
		header += fmt.Sprintf("  %01x  ", i)
	}
	rows := []string{header}
	for _, start := range []uint16{0x0000, 0x0010, 0x0020, 0x0030, 0x0040} {
		rows = append(rows, m.renderPage(b, start))
	}
	base := m.cpu.ProgramCounter &^ 0xF
	if base < m.offset {
		base = m.offset &^ 0xF
	}
	for i := uint16(0); i < 5; i++ {
		rows = append(rows, m.renderPage(b, base+i*16))
	}
	return strings.Join(rows, "\n")
}

func (m model) history() string {
	var lines []string
	for _, s := range m.cpu.History() {
		lines = append(lines, fmt.Sprintf("%04x: %02x %s", s.PC, s.Opcode, s.Mnemonic))
	}
	return strings.Join(lines, "\n")
}

func (m model) View() string {
	bus := m.cpu.Bus
	next := bus.Read(m.cpu.ProgramCounter)
	entry, _ := opcode.Lookup(next)
	var src string
	if line, ok := m.lines[m.cpu.ProgramCounter]; ok {
		src = fmt.Sprintf("source line %d", line)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(bus), m.status()),
		"",
		src,
		"next: "+spew.Sdump(entry),
		m.history(),
	)
}
