package service

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

type fakeService struct {
	name     string
	deps     []string
	initErr  error
	startErr error
	log      *[]string
	args     []any
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }

func (f *fakeService) Init(args ...any) error {
	f.args = args
	*f.log = append(*f.log, "init:"+f.name)
	return f.initErr
}

func (f *fakeService) Start() error {
	*f.log = append(*f.log, "start:"+f.name)
	return f.startErr
}

func (f *fakeService) Stop() error {
	*f.log = append(*f.log, "stop:"+f.name)
	return nil
}

func TestHubDependencyOrder(t *testing.T) {
	var log []string
	h := NewHub()
	h.Register(&fakeService{name: "render", deps: []string{"sprites"}, log: &log})
	h.Register(&fakeService{name: "sprites", log: &log})
	h.Register(&fakeService{name: "audio", log: &log})

	if err := h.InitAll("cfg"); err != nil {
		t.Fatalf("InitAll failed: %v", err)
	}
	if err := h.StartAll(); err != nil {
		t.Fatalf("StartAll failed: %v", err)
	}
	h.StopAll()

	want := "init:audio init:sprites init:render start:audio start:sprites start:render stop:render stop:sprites stop:audio"
	if got := strings.Join(log, " "); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	svc, ok := Lookup[*fakeService](h, "audio")
	if !ok || len(svc.args) != 1 || svc.args[0] != "cfg" {
		t.Errorf("Expected audio service to receive init args, got %+v", svc)
	}
}

func TestHubDuplicateRegistration(t *testing.T) {
	var log []string
	h := NewHub()
	if err := h.Register(&fakeService{name: "a", log: &log}); err != nil {
		t.Fatal(err)
	}
	if err := h.Register(&fakeService{name: "a", log: &log}); err == nil {
		t.Error("Expected duplicate registration error")
	}
}

func TestHubMissingAndCircularDependencies(t *testing.T) {
	var log []string
	h := NewHub()
	h.Register(&fakeService{name: "a", deps: []string{"ghost"}, log: &log})
	if err := h.InitAll(); err == nil || !strings.Contains(err.Error(), "ghost") {
		t.Errorf("Expected unregistered dependency error, got %v", err)
	}

	h = NewHub()
	h.Register(&fakeService{name: "a", deps: []string{"b"}, log: &log})
	h.Register(&fakeService{name: "b", deps: []string{"a"}, log: &log})
	if err := h.InitAll(); err == nil || !strings.Contains(err.Error(), "circular") {
		t.Errorf("Expected circular dependency error, got %v", err)
	}
}

func TestHubInitRollback(t *testing.T) {
	var log []string
	h := NewHub()
	h.Register(&fakeService{name: "a", log: &log})
	h.Register(&fakeService{name: "b", deps: []string{"a"}, initErr: errors.New("no device"), log: &log})

	err := h.InitAll()
	if err == nil {
		t.Fatal("Expected init failure")
	}
	if !strings.Contains(err.Error(), "service b init: no device") {
		t.Errorf("Expected wrapped error, got %v", err)
	}
	if got := strings.Join(log, " "); got != "init:a init:b stop:a" {
		t.Errorf("Expected rollback of a, got %q", got)
	}
}

func TestHubStartRollback(t *testing.T) {
	var log []string
	h := NewHub()
	h.Register(&fakeService{name: "a", log: &log})
	h.Register(&fakeService{name: "b", deps: []string{"a"}, startErr: errors.New("busy"), log: &log})

	if err := h.InitAll(); err != nil {
		t.Fatal(err)
	}
	if err := h.StartAll(); err == nil {
		t.Fatal("Expected start failure")
	}
	if got := strings.Join(log, " "); got != "init:a init:b start:a start:b stop:a" {
		t.Errorf("Expected rollback of a, got %q", got)
	}
	if len(h.Order()) != 2 {
		t.Errorf("Expected 2 ordered services, got %v", h.Order())
	}
}

func TestHubStartBeforeInit(t *testing.T) {
	h := NewHub()
	if err := h.StartAll(); err == nil {
		t.Error("Expected error when starting before init")
	}
}
