package settings

import (
	"encoding/json"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/mitchellh/mapstructure"
)

type fileService struct {
	fs           boshsys.FileSystem
	settingsPath string
	properties   map[string]interface{}

	logger boshlog.Logger
	logTag string
}

// NewFileService returns a Service backed by a JSON properties file. A
// missing file is not an error; lookups then yield their defaults.
func NewFileService(fs boshsys.FileSystem, settingsPath string, logger boshlog.Logger) Service {
	return &fileService{
		fs:           fs,
		settingsPath: settingsPath,
		properties:   map[string]interface{}{},

		logger: logger,
		logTag: "settingsService",
	}
}

func (s *fileService) LoadSettings() error {
	if !s.fs.FileExists(s.settingsPath) {
		s.logger.Debug(s.logTag, "Settings file '%s' does not exist, using defaults", s.settingsPath)
		return nil
	}

	contents, err := s.fs.ReadFile(s.settingsPath)
	if err != nil {
		return bosherr.WrapErrorf(err, "Reading settings file '%s'", s.settingsPath)
	}

	properties := map[string]interface{}{}
	err = json.Unmarshal(contents, &properties)
	if err != nil {
		return bosherr.WrapErrorf(err, "Parsing settings file '%s'", s.settingsPath)
	}

	s.properties = properties
	return nil
}

func (s *fileService) GetBool(name string, defaultVal bool) bool {
	raw, found := s.properties[name]
	if !found {
		return defaultVal
	}

	var value bool
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &value,
	})
	if err != nil {
		return defaultVal
	}

	err = decoder.Decode(raw)
	if err != nil {
		s.logger.Debug(s.logTag, "Property '%s' is not a boolean, using default %t", name, defaultVal)
		return defaultVal
	}

	return value
}
