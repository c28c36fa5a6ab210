package regulations

// Service derives the current regulation set from a corpus directory.
// Rules are re-derived on every call rather than cached: the regulation
// set is not a versioned object, it is whatever the corpus parses to now.
type Service struct {
	Dir   string
	Synth *Synthesizer
}

// NewService constructs a Service over the given regulations directory.
func NewService(dir string) *Service {
	return &Service{Dir: dir, Synth: NewSynthesizer()}
}

// Rules synthesizes and pools rules from every document in the corpus.
func (s *Service) Rules() ([]Rule, error) {
	return s.Synth.FromCorpus(s.Dir)
}
