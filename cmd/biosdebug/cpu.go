package main

import (
	"gbahle/bios"
	"gbahle/memory"
	"gbahle/regs"
)

// devCPU is the minimal bios.CPU implementation the debugger drives. It has
// no interrupt controller and no real BIOS image behind it: RaiseSWI and
// Halt just count their calls so the TUI can report them.
type devCPU struct {
	regs     regs.File
	bus      *devBus
	fullBIOS bool
	biosImg  bios.Image

	raises int
	halts  int
}

func newDevCPU() *devCPU {
	return &devCPU{
		bus:     newDevBus(),
		biosImg: bios.Image{Bytes: make([]byte, bios.SizeBIOS), Size: bios.SizeBIOS},
	}
}

func (c *devCPU) Regs() *regs.File { return &c.regs }
func (c *devCPU) Bus() memory.Bus  { return c.bus }
func (c *devCPU) RaiseSWI()        { c.raises++ }
func (c *devCPU) Halt()            { c.halts++ }
func (c *devCPU) FullBIOS() bool   { return c.fullBIOS }
func (c *devCPU) BIOS() bios.Image { return c.biosImg }
