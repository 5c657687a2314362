package ttlpulse

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// fakePort records every write and close
type fakePort struct {
	writes   [][]byte
	closes   int
	writeN   int
	writeErr error
	closeErr error
}

func (p *fakePort) Write(data []byte) (int, error) {
	p.writes = append(p.writes, append([]byte(nil), data...))
	if p.writeErr != nil {
		return 0, p.writeErr
	}
	if p.writeN >= 0 {
		return p.writeN, nil
	}
	return len(data), nil
}

func (p *fakePort) Close() error {
	p.closes++
	return p.closeErr
}

// fakeOpener hands out a single fakePort and records the requested config
type fakeOpener struct {
	port    *fakePort
	openErr error
	device  string
	config  Config
	opens   int
}

func (o *fakeOpener) open(device string, opts ...Option) (Port, error) {
	o.opens++
	o.device = device
	config, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	o.config = config
	if o.openErr != nil {
		return nil, o.openErr
	}
	return o.port, nil
}

func newFakeOpener() *fakeOpener {
	return &fakeOpener{port: &fakePort{writeN: -1}}
}

func TestSendPulseWritesOneByte(t *testing.T) {
	opener := newFakeOpener()
	sender := NewSender(WithOpener(opener.open))

	if err := sender.SendPulse("/dev/ttyUSB0", 9600); err != nil {
		t.Fatalf("SendPulse failed: %v", err)
	}

	if opener.device != "/dev/ttyUSB0" {
		t.Errorf("Expected device /dev/ttyUSB0, got %q", opener.device)
	}
	if opener.config.BaudRate != 9600 {
		t.Errorf("Expected BaudRate 9600, got %d", opener.config.BaudRate)
	}
	if len(opener.port.writes) != 1 {
		t.Fatalf("Expected exactly 1 write, got %d", len(opener.port.writes))
	}
	if !bytes.Equal(opener.port.writes[0], []byte{0xFF}) {
		t.Errorf("Expected write of [0xFF], got %#v", opener.port.writes[0])
	}
	if opener.port.closes != 1 {
		t.Errorf("Expected port to be closed once, got %d", opener.port.closes)
	}
}

func TestSendPulseBaudRate(t *testing.T) {
	for _, rate := range []uint32{300, 9600, 115200, 4000000} {
		opener := newFakeOpener()
		sender := NewSender(WithOpener(opener.open))

		if err := sender.SendPulse("COM3", rate); err != nil {
			t.Fatalf("SendPulse(%d) failed: %v", rate, err)
		}
		if opener.config.BaudRate != int(rate) {
			t.Errorf("Expected BaudRate %d, got %d", rate, opener.config.BaudRate)
		}
	}
}

func TestSendPulseZeroBaudRate(t *testing.T) {
	opener := newFakeOpener()
	sender := NewSender(WithOpener(opener.open))

	err := sender.SendPulse("COM3", 0)
	if !errors.Is(err, ErrOpen) || !errors.Is(err, ErrInvalidBaudRate) {
		t.Errorf("Expected ErrOpen wrapping ErrInvalidBaudRate, got %v", err)
	}
	if len(opener.port.writes) != 0 {
		t.Error("Nothing should be written when the port cannot be opened")
	}
}

func TestSendPulseOpenError(t *testing.T) {
	opener := newFakeOpener()
	opener.openErr = ErrPermissionDenied
	sender := NewSender(WithOpener(opener.open))

	err := sender.SendPulse("COM3", 9600)
	if !errors.Is(err, ErrOpen) {
		t.Errorf("Expected ErrOpen, got %v", err)
	}
	if !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("Expected ErrPermissionDenied to be preserved, got %v", err)
	}
	if len(opener.port.writes) != 0 || opener.port.closes != 0 {
		t.Errorf("Unopened port was used: %d writes, %d closes", len(opener.port.writes), opener.port.closes)
	}
	if opener.opens != 1 {
		t.Errorf("Expected a single open attempt, got %d", opener.opens)
	}
}

func TestSendPulseWriteErrorStillCloses(t *testing.T) {
	opener := newFakeOpener()
	cause := errors.New("device removed")
	opener.port.writeErr = cause
	sender := NewSender(WithOpener(opener.open))

	err := sender.SendPulse("COM3", 9600)
	if !errors.Is(err, ErrWrite) || !errors.Is(err, cause) {
		t.Errorf("Expected ErrWrite wrapping the cause, got %v", err)
	}
	if len(opener.port.writes) != 1 {
		t.Errorf("Expected a single write attempt, got %d", len(opener.port.writes))
	}
	if opener.port.closes != 1 {
		t.Errorf("Expected port to be closed after a failed write, got %d closes", opener.port.closes)
	}
}

func TestSendPulseShortWrite(t *testing.T) {
	opener := newFakeOpener()
	opener.port.writeN = 0
	sender := NewSender(WithOpener(opener.open))

	err := sender.SendPulse("COM3", 9600)
	if !errors.Is(err, ErrWrite) || !errors.Is(err, io.ErrShortWrite) {
		t.Errorf("Expected ErrWrite wrapping io.ErrShortWrite, got %v", err)
	}
	if len(opener.port.writes) != 1 {
		t.Errorf("A short write must not be retried, got %d writes", len(opener.port.writes))
	}
	if opener.port.closes != 1 {
		t.Errorf("Expected port to be closed, got %d closes", opener.port.closes)
	}
}

func TestSendPulseCloseError(t *testing.T) {
	opener := newFakeOpener()
	opener.port.closeErr = errors.New("drain failed")
	sender := NewSender(WithOpener(opener.open))

	err := sender.SendPulse("COM3", 9600)
	if err == nil {
		t.Fatal("Expected close error to be reported")
	}
	if !errors.Is(err, opener.port.closeErr) {
		t.Errorf("Expected close error in %v", err)
	}
	if errors.Is(err, ErrWrite) {
		t.Errorf("Close failure should not be reported as a write failure: %v", err)
	}
}

func TestNewSenderDefaults(t *testing.T) {
	sender := NewSender(WithLogger(nil))
	if sender.open == nil {
		t.Error("Expected default opener")
	}
	if sender.logger == nil {
		t.Error("Expected a logger even when nil was given")
	}
}

func TestSendPulseLineSettings(t *testing.T) {
	opener := newFakeOpener()
	sender := NewSender(
		WithOpener(opener.open),
		WithLineSettings(WithDataBits(7), WithStopBits(2), WithParity(ParityEven), WithBaudRate(300)),
	)

	if err := sender.SendPulse("COM3", 115200); err != nil {
		t.Fatalf("SendPulse failed: %v", err)
	}

	expected := Config{BaudRate: 115200, DataBits: 7, StopBits: 2, Parity: ParityEven}
	if opener.config != expected {
		t.Errorf("Opened with %+v, expected %+v", opener.config, expected)
	}
}

func TestSendPulseInvalidLineSettings(t *testing.T) {
	opener := newFakeOpener()
	sender := NewSender(WithOpener(opener.open), WithLineSettings(WithDataBits(9)))

	err := sender.SendPulse("COM3", 9600)
	if !errors.Is(err, ErrOpen) || !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrOpen wrapping ErrInvalidConfig, got %v", err)
	}
	if len(opener.port.writes) != 0 {
		t.Error("Nothing should be written with invalid line settings")
	}
}
