package school

// SetCodeGenerator swaps the join code source in tests.
func SetCodeGenerator(svc Service, gen func() (string, error)) {
	svc.(*service).newCode = gen
}
