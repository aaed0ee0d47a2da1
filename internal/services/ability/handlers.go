package ability

// RegisterCoreHandlers registers the engine's built-in ability handlers
// on a service created by NewService
func RegisterCoreHandlers(s Service) {
	svc, ok := s.(*service)
	if !ok {
		panic("RegisterCoreHandlers requires a service created by NewService")
	}
	s.RegisterHandler(newPreciseShotHandler(svc))
	s.RegisterHandler(newDefensiveFightingHandler(svc))
}
