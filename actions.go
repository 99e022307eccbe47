package main

// ActionDefinition defines an action with its default keybindings, mouse bindings, and description
type ActionDefinition struct {
	Name         string
	Keys         []string
	MouseActions []string
	Description  string
}

// actionDefinitions contains all action definitions with default keybindings, mouse bindings, and descriptions
var actionDefinitions = []ActionDefinition{
	{"exit", []string{"Escape", "KeyQ"}, []string{}, "Quit reader"},
	{"help", []string{"Shift+Slash"}, []string{"Alt+RightClick"}, "Show/hide help"},
	{"info", []string{"KeyI"}, []string{}, "Show/hide page info"},
	{"next", []string{"ArrowRight", "Space", "KeyN"}, []string{"WheelDown"}, "Next page (one spread in double view)"},
	{"previous", []string{"ArrowLeft", "Backspace", "KeyP"}, []string{"WheelUp"}, "Previous page (one spread in double view)"},
	{"toggle_view_mode", []string{"KeyB"}, []string{"MiddleClick"}, "Toggle single/double page view"},
	{"toggle_reading_direction", []string{"Shift+KeyB"}, []string{"Ctrl+MiddleClick"}, "Toggle reading direction (LTR / RTL)"},
	{"fullscreen", []string{"Enter"}, []string{"DoubleLeftClick"}, "Toggle fullscreen"},
	{"page_input", []string{"KeyG"}, []string{"Ctrl+LeftClick"}, "Go to page (enter page number)"},
	{"jump_first", []string{"Home"}, []string{}, "Jump to first page"},
	{"jump_last", []string{"End"}, []string{}, "Jump to last page"},

	// Zoom and pan actions. Ctrl+wheel zoom lives in the viewport engine
	// (it needs the 16ms throttle), so it is not bound here.
	{"zoom_in", []string{"Equal", "Shift+Equal", "Ctrl+ArrowUp"}, []string{}, "Zoom in 10%"},
	{"zoom_out", []string{"Minus", "Ctrl+ArrowDown"}, []string{}, "Zoom out 10%"},
	{"zoom_reset", []string{"Key0"}, []string{"Shift+MiddleClick"}, "Reset zoom to 100% and re-center"},
	{"pan_up", []string{"Shift+ArrowUp"}, []string{}, "Pan up"},
	{"pan_down", []string{"Shift+ArrowDown"}, []string{}, "Pan down"},
	{"pan_left", []string{"Shift+ArrowLeft"}, []string{}, "Pan left"},
	{"pan_right", []string{"Shift+ArrowRight"}, []string{}, "Pan right"},
}

// ActionExecutor provides centralized action execution logic
// This eliminates the need for duplicate ExecuteAction implementations
// in both KeybindingManager and MousebindingManager
type ActionExecutor struct{}

// NewActionExecutor creates a new ActionExecutor instance
func NewActionExecutor() *ActionExecutor {
	return &ActionExecutor{}
}

// ExecuteAction executes the given action using the InputActions interface
// This is the single source of truth for all action execution logic
func (ae *ActionExecutor) ExecuteAction(action string, inputActions InputActions, inputState InputState) bool {
	switch action {
	case "exit":
		inputActions.Exit()
	case "help":
		inputActions.ToggleHelp()
	case "info":
		inputActions.ToggleInfo()
	case "next":
		inputActions.GoToNextPage()
	case "previous":
		inputActions.GoToPrevPage()
	case "toggle_view_mode":
		inputActions.ToggleViewMode()
	case "toggle_reading_direction":
		inputActions.ToggleReadingDirection()
	case "fullscreen":
		inputActions.ToggleFullscreen()
	case "page_input":
		if !inputState.IsInPageInputMode() {
			inputActions.EnterPageInputMode()
		}
	case "jump_first":
		inputActions.JumpToPage(1)
	case "jump_last":
		totalPages := inputActions.TotalPages()
		if totalPages > 0 {
			inputActions.JumpToPage(totalPages)
		}
	case "zoom_in":
		inputActions.ZoomIn()
	case "zoom_out":
		inputActions.ZoomOut()
	case "zoom_reset":
		inputActions.ResetZoom()
	case "pan_up":
		inputActions.PanUp()
	case "pan_down":
		inputActions.PanDown()
	case "pan_left":
		inputActions.PanLeft()
	case "pan_right":
		inputActions.PanRight()
	default:
		return false
	}

	return true
}

// globalActionExecutor is the global instance of ActionExecutor used throughout the application
var globalActionExecutor = NewActionExecutor()

// GetActionDescriptions returns a map of action names to their descriptions
func GetActionDescriptions() map[string]string {
	descriptions := make(map[string]string)
	for _, action := range actionDefinitions {
		descriptions[action.Name] = action.Description
	}
	return descriptions
}

// GetDefaultKeybindings returns a map of action names to their default keybindings
func GetDefaultKeybindings() map[string][]string {
	keybindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		keybindings[action.Name] = action.Keys
	}
	return keybindings
}

// GetDefaultMousebindings returns a map of action names to their default mouse bindings
func GetDefaultMousebindings() map[string][]string {
	mousebindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		mousebindings[action.Name] = action.MouseActions
	}
	return mousebindings
}
