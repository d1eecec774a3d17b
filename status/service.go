package status

// Service wraps Registry for the service hub
// The registry needs no setup; the wrapper provides lifecycle conformance
type Service struct {
	registry *Registry
}

func NewService(r *Registry) *Service {
	if r == nil {
		r = NewRegistry()
	}
	return &Service{registry: r}
}

func (s *Service) Name() string           { return "status" }
func (s *Service) Dependencies() []string { return nil }
func (s *Service) Init(...any) error      { return nil }
func (s *Service) Start() error           { return nil }
func (s *Service) Stop() error            { return nil }

// Registry returns the underlying metrics registry
func (s *Service) Registry() *Registry {
	return s.registry
}
