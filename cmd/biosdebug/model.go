package main

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"gbahle/bios"
	"gbahle/biolog"
)

// scriptStep pairs an SWI immediate with the label shown once it runs,
// directly modeled on cpu/debugger.go's single-step-on-spacebar loop but
// driving a scripted sequence of SWI invocations instead of single CPU
// instructions.
type scriptStep struct {
	immediate uint32
	label     string
}

// script is a small scripted tour of the dispatcher: a division, an
// LZ77-compressed literal run decoded into EWRAM, a deliberate
// divide-by-zero to show the GAME_ERROR path, and a square root.
var script = []scriptStep{
	{0x06, "Div(100, 7)"},
	{0x11, "LZ77UnCompWram"},
	{0x06, "Div(n, 0)"},
	{0x08, "Sqrt(144)"},
}

const destRegion uint32 = 0x02000000

type model struct {
	cpu  *devCPU
	disp *bios.Dispatcher
	logs *strings.Builder

	step int
	err  error
}

func newModel() model {
	cpu := newDevCPU()
	cpu.regs.SetR0(100)
	cpu.regs.SetR1(7)

	// LZ77 decode step: an 8-byte literal run into EWRAM.
	cpu.bus.Store32(0x03000000, 0, 0x00000810)
	cpu.bus.writeBytes(0x03000004, []byte{0x00})
	cpu.bus.writeBytes(0x03000005, []byte("GBA HLE!"))

	logs := &strings.Builder{}
	lg := biolog.NewWithWriter(log.New(logs, "", 0))

	return model{
		cpu:  cpu,
		disp: bios.New(lg),
		logs: logs,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			if m.step >= len(script) {
				return m, nil
			}
			s := script[m.step]
			if s.immediate == 0x11 {
				m.cpu.regs.SetR0(0x03000000)
				m.cpu.regs.SetR1(destRegion)
			}
			if s.label == "Div(n, 0)" {
				m.cpu.regs.SetR0(5)
				m.cpu.regs.SetR1(0)
			}
			if s.immediate == 0x08 {
				m.cpu.regs.SetR0(144)
			}
			m.disp.Invoke(m.cpu, s.immediate)
			m.step++
		}
	}
	return m, nil
}

func (m model) registerPane() string {
	return spew.Sdump(m.cpu.regs.Snapshot())
}

func (m model) memoryPane() string {
	header := fmt.Sprintf("%08x | ", destRegion)
	for _, b := range m.cpu.bus.page(destRegion) {
		header += fmt.Sprintf("%02x ", b)
	}
	return header
}

func (m model) statusPane() string {
	last := "(not started)"
	if m.step > 0 {
		last = script[m.step-1].label
	}
	return fmt.Sprintf("step %d/%d\nlast: %s\nraises: %d  halts: %d",
		m.step, len(script), last, m.cpu.raises, m.cpu.halts)
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.registerPane(),
			m.statusPane(),
		),
		m.memoryPane(),
		"",
		m.logs.String(),
		"",
		"space/j: step   q: quit",
	)
}
