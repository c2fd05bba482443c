package shell

import "log/slog"

// Options configures a Shell.
type Options struct {
	Tray      Tray
	Window    Window
	Assets    Assets
	Placement Placement
	OnFailure FailureFunc
	Logger    *slog.Logger
}

// Shell wires both controllers to one dispatcher.
type Shell struct {
	dispatcher *Dispatcher
	icon       *IconController
	window     *WindowController
}

func New(opts Options) *Shell {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Shell{
		dispatcher: NewDispatcher(opts.OnFailure),
		icon:       NewIconController(opts.Tray, opts.Assets, logger.With("component", "tray-icon")),
		window:     NewWindowController(opts.Window, opts.Placement, logger.With("component", "window")),
	}
	s.dispatcher.Subscribe(KindRecordingChanged, s.icon.Handle)
	s.dispatcher.Subscribe(KindTrayLeftClick, s.window.Handle)
	s.dispatcher.Subscribe(KindWindowClosing, s.window.Handle)
	return s
}

// Recording delivers a recording notification.
func (s *Shell) Recording(signal RecordingSignal) {
	s.dispatcher.Dispatch(RecordingChanged{Signal: signal})
}

// RecordingPayload normalises a raw notification payload and delivers it.
func (s *Shell) RecordingPayload(payload any) {
	s.Recording(ParseRecordingPayload(payload))
}

// TrayLeftClick delivers a tray left click.
func (s *Shell) TrayLeftClick(click TrayClick) {
	s.dispatcher.Dispatch(TrayLeftClick{Click: click})
}

// TrayActivated delivers a tray left click whose geometry is resolved by
// locate when the window is shown.
func (s *Shell) TrayActivated(locate ClickLocator) {
	s.dispatcher.Dispatch(TrayLeftClick{Locate: locate})
}

// WindowClosing delivers a close request for the main window.
func (s *Shell) WindowClosing() {
	s.dispatcher.Dispatch(WindowClosing{})
}

func (s *Shell) Dispatcher() *Dispatcher {
	return s.dispatcher
}

func (s *Shell) IconController() *IconController {
	return s.icon
}

func (s *Shell) WindowController() *WindowController {
	return s.window
}
