package main

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/cl-interop/errors"
	"github.com/wippyai/cl-interop/tokens"
)

func TestSelectTables(t *testing.T) {
	all, err := selectTables("")
	if err != nil || len(all) != len(tokens.CL10) {
		t.Fatalf("default = %d tables, %v", len(all), err)
	}

	got, err := selectTables("CL10.errors, CL10.mem_flags")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Name != "CL10.errors" || got[1].Name != "CL10.mem_flags" {
		t.Fatalf("tables = %v", got)
	}

	if _, err := selectTables("CL10.errors,nope"); !stderrors.Is(err, &errors.Error{Phase: errors.PhaseScan, Kind: errors.KindNotFound}) {
		t.Fatalf("err = %v", err)
	}
}

func TestRun_Table(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, options{filter: "CL_INVALID_MEM"}, tokens.CL10)
	if err != nil {
		t.Fatal(err)
	}
	s := out.String()
	if !strings.Contains(s, "CL_INVALID_MEM_OBJECT") || !strings.Contains(s, "0xFFFFFFDA") {
		t.Fatalf("output:\n%s", s)
	}
	if strings.Contains(s, "CL_SUCCESS") {
		t.Error("filter not applied")
	}
}

func TestRun_Ambiguous(t *testing.T) {
	var out bytes.Buffer
	tables, _ := selectTables("CL10.device_type,CL10.mem_flags")
	if err := run(&out, options{}, tables); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "0x1 (ambiguous)") {
		t.Fatalf("output:\n%s", out.String())
	}
}

func TestRun_Extensions(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, options{ext: "cl_khr_gl_sharing cl_khr_fp64 cl_khr_fp64"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("output:\n%s", out.String())
	}
	if !strings.Contains(lines[0], "(2, 30 bytes)") {
		t.Errorf("header = %q", lines[0])
	}
	if strings.TrimSpace(lines[1]) != "cl_khr_fp64" || strings.TrimSpace(lines[2]) != "cl_khr_gl_sharing" {
		t.Errorf("lines = %q", lines)
	}
}

func TestRun_ExtensionsNonASCII(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, options{ext: "cl_khr_fp64 cl_café"}, nil)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseMarshal, Kind: errors.KindNonASCII}) {
		t.Fatalf("err = %v", err)
	}
}

func TestRun_Demo(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, options{ext: "x", demo: true}, nil); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	want := []string{"kernel", "kernel", "program", "sampler", "mem", "mem", "command-queue"}
	idx := 0
	for _, line := range strings.Split(s, "\n") {
		if !strings.Contains(line, "released ") {
			continue
		}
		if idx >= len(want) || !strings.Contains(line, "released "+want[idx]+" ") {
			t.Fatalf("unexpected line %q at %d\n%s", line, idx, s)
		}
		idx++
	}
	if idx != len(want) {
		t.Fatalf("saw %d releases, want %d\n%s", idx, len(want), s)
	}
	if !strings.Contains(s, "staged 2 bytes at 0x1000, first x") {
		t.Fatalf("guest staging missing:\n%s", s)
	}
}

func TestInteractiveModel_Filter(t *testing.T) {
	m := newInteractiveModel(tokens.CL10, "")
	total := len(m.rows)
	if total == 0 {
		t.Fatal("no rows")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("cl_invalid_mem")})
	if len(m.rows) != 1 || m.rows[0].name != "CL_INVALID_MEM_OBJECT" {
		t.Fatalf("rows = %+v", m.rows)
	}

	m.input.SetValue("")
	m.refresh()
	if len(m.rows) != total {
		t.Fatalf("rows = %d, want %d", len(m.rows), total)
	}
}

func TestInteractiveModel_Scroll(t *testing.T) {
	m := newInteractiveModel(tokens.CL10, "CL_INVALID_")
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	if m.height != 3 {
		t.Fatalf("height = %d, want 3", m.height)
	}
	for range 5 {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.selected != 5 || m.offset != 3 {
		t.Fatalf("selected=%d offset=%d", m.selected, m.offset)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.selected != 2 || m.offset != 2 {
		t.Fatalf("selected=%d offset=%d", m.selected, m.offset)
	}
	if !strings.Contains(m.View(), "CL Tokens") {
		t.Error("View missing title")
	}
}
