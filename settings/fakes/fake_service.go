package fakes

type FakeService struct {
	LoadSettingsErr    error
	LoadSettingsCalled bool

	Bools map[string]bool

	GetBoolNames []string
}

func NewFakeService() *FakeService {
	return &FakeService{Bools: map[string]bool{}}
}

func (s *FakeService) LoadSettings() error {
	s.LoadSettingsCalled = true
	return s.LoadSettingsErr
}

func (s *FakeService) GetBool(name string, defaultVal bool) bool {
	s.GetBoolNames = append(s.GetBoolNames, name)

	value, found := s.Bools[name]
	if !found {
		return defaultVal
	}
	return value
}
