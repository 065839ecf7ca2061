package tui

import (
	"github.com/gdamore/tcell/v2"
)

// keyPress is the part of a key event the grid reacts to
type keyPress struct {
	key tcell.Key
	r   rune
}

func keyFromEvent(ev *tcell.EventKey) keyPress {
	return keyPress{key: ev.Key(), r: ev.Rune()}
}

func runeKey(r rune) keyPress {
	return keyPress{key: tcell.KeyRune, r: r}
}

// handleKey updates state for one key press and reports the work the
// application should do
func handleKey(k keyPress, s *AppState) Action {
	switch s.mode {
	case ModeEdit:
		return handleEditKey(k, s)
	case ModeFilter:
		return handleFilterKey(k, s)
	case ModeConfirmDelete:
		return handleConfirmKey(k, s)
	}
	return handleBrowseKey(k, s)
}

func handleBrowseKey(k keyPress, s *AppState) Action {
	switch k.key {
	case tcell.KeyUp:
		s.row--
	case tcell.KeyDown:
		s.row++
	case tcell.KeyLeft:
		s.col--
	case tcell.KeyRight, tcell.KeyTab:
		s.col++
	case tcell.KeyHome:
		s.col = 0
	case tcell.KeyEnd:
		s.col = len(s.columns) - 1
	case tcell.KeyPgUp:
		s.row -= s.pageSize
	case tcell.KeyPgDn:
		s.row += s.pageSize
	case tcell.KeyEnter:
		row, ok := s.CurrentRow()
		if !ok {
			s.SetStatus("No QSOs to edit; press n for a new entry")
			return ActionNone
		}
		s.startInput(ModeEdit, row.Record.Value(s.CurrentColumn().Field))
		s.SetStatus("Editing %s", s.CurrentColumn().Header)
	case tcell.KeyEscape:
		s.selected = map[string]bool{}
		s.status = ""
	case tcell.KeyDelete:
		return askDelete(s)
	case tcell.KeyCtrlS:
		return ActionSave
	case tcell.KeyCtrlO:
		return ActionOpen
	case tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch k.r {
		case ' ':
			if row, ok := s.CurrentRow(); ok {
				if s.selected[row.ID] {
					delete(s.selected, row.ID)
				} else {
					s.selected[row.ID] = true
				}
			}
		case 'd':
			return askDelete(s)
		case 'n':
			s.followEnd = true
			return ActionNew
		case '/':
			s.startInput(ModeFilter, s.filter)
			s.SetStatus("Filter (e.g. CALL~W1, BAND=20m)")
		case 's':
			field := s.CurrentColumn().Field
			if s.sortField == field {
				s.sortDesc = !s.sortDesc
			} else {
				s.sortField, s.sortDesc = field, false
			}
			return ActionSort
		case 'q':
			return ActionQuit
		}
	}
	s.clamp()
	return ActionNone
}

// askDelete targets the selected rows, or the current row when nothing is
// selected
func askDelete(s *AppState) Action {
	ids := s.SelectedIDs()
	if len(ids) == 0 {
		if row, ok := s.CurrentRow(); ok {
			ids = []string{row.ID}
		}
	}
	if len(ids) == 0 {
		s.SetStatus("No QSOs selected")
		return ActionNone
	}
	s.pending = ids
	s.mode = ModeConfirmDelete
	s.SetStatus("Delete %d selected QSO(s)? [y/N]", len(ids))
	return ActionNone
}

func handleConfirmKey(k keyPress, s *AppState) Action {
	s.mode = ModeBrowse
	if k.key == tcell.KeyRune && (k.r == 'y' || k.r == 'Y') {
		return ActionDelete
	}
	s.pending = nil
	s.SetStatus("Delete canceled")
	return ActionNone
}

func handleEditKey(k keyPress, s *AppState) Action {
	switch k.key {
	case tcell.KeyEscape:
		s.endInput()
		s.SetStatus("Edit canceled")
		return ActionNone
	case tcell.KeyEnter:
		return ActionCommit
	}
	editInput(k, s)
	return ActionNone
}

func handleFilterKey(k keyPress, s *AppState) Action {
	switch k.key {
	case tcell.KeyEscape:
		s.endInput()
		s.status = ""
		return ActionNone
	case tcell.KeyEnter:
		return ActionFilter
	}
	editInput(k, s)
	return ActionNone
}

// editInput applies line editing keys to the input buffer
func editInput(k keyPress, s *AppState) {
	switch k.key {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if s.cursor > 0 {
			s.input = append(s.input[:s.cursor-1], s.input[s.cursor:]...)
			s.cursor--
		}
	case tcell.KeyDelete:
		if s.cursor < len(s.input) {
			s.input = append(s.input[:s.cursor], s.input[s.cursor+1:]...)
		}
	case tcell.KeyLeft:
		if s.cursor > 0 {
			s.cursor--
		}
	case tcell.KeyRight:
		if s.cursor < len(s.input) {
			s.cursor++
		}
	case tcell.KeyHome, tcell.KeyCtrlA:
		s.cursor = 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		s.cursor = len(s.input)
	case tcell.KeyCtrlU:
		s.input = nil
		s.cursor = 0
	case tcell.KeyRune:
		s.input = append(s.input[:s.cursor], append([]rune{k.r}, s.input[s.cursor:]...)...)
		s.cursor++
	}
}
