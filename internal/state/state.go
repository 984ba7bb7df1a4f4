// internal/state/state.go
package state

// Phase — состояние сессии
type Phase int

const (
	MainMenu Phase = iota
	Playing
	Paused
	GameOver
)

func (p Phase) String() string {
	switch p {
	case MainMenu:
		return "MAIN_MENU"
	case Playing:
		return "PLAYING"
	case Paused:
		return "PAUSED"
	case GameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// Command — внешний запрос на смену состояния
type Command int

const (
	Start       Command = iota // начать игру (после сброса)
	TogglePause                // пауза / продолжить
	Defeat                     // здоровье игрока кончилось
	Menu                       // выйти в главное меню
)

// transition описывает переходы из одного состояния.
// Второй результат false — команда в этом состоянии не допустима.
type transition func(cmd Command) (Phase, bool)

// StateMachine — машина состояний сессии
type StateMachine struct {
	current     Phase
	transitions map[Phase]transition
	onChange    func(from, to Phase)
}

// NewStateMachine создаёт машину в заданном начальном состоянии
func NewStateMachine(initial Phase) *StateMachine {
	return &StateMachine{
		current: initial,
		transitions: map[Phase]transition{
			MainMenu: fromMainMenu,
			Playing:  fromPlaying,
			Paused:   fromPaused,
			GameOver: fromGameOver,
		},
	}
}

// OnChange задаёт обработчик смены состояния
func (sm *StateMachine) OnChange(fn func(from, to Phase)) {
	sm.onChange = fn
}

func (sm *StateMachine) Current() Phase {
	return sm.current
}

// Fire применяет команду. Возвращает false, если переход запрещён.
func (sm *StateMachine) Fire(cmd Command) bool {
	next, ok := sm.transitions[sm.current](cmd)
	if !ok {
		return false
	}
	from := sm.current
	sm.current = next
	if sm.onChange != nil && from != next {
		sm.onChange(from, next)
	}
	return true
}

func fromMainMenu(cmd Command) (Phase, bool) {
	if cmd == Start {
		return Playing, true
	}
	return MainMenu, false
}

func fromPlaying(cmd Command) (Phase, bool) {
	switch cmd {
	case TogglePause:
		return Paused, true
	case Defeat:
		return GameOver, true
	case Menu:
		return MainMenu, true
	}
	return Playing, false
}

func fromPaused(cmd Command) (Phase, bool) {
	switch cmd {
	case Start, TogglePause:
		return Playing, true
	case Menu:
		return MainMenu, true
	}
	return Paused, false
}

func fromGameOver(cmd Command) (Phase, bool) {
	switch cmd {
	case Start:
		return Playing, true
	case Menu:
		return MainMenu, true
	}
	return GameOver, false
}
