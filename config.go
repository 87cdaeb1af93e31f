package seqbuffer

import (
	"bufio"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// confPath stores path to the optional configuration file
var confPath string

// config stores the configuration as read from the configuration file and
// the environment, keyed without the environment prefix
var config map[string]string

// pat stores a valid key-value pattern line
var pat = regexp.MustCompile("^([A-Z0-9_]+)=(.*)$")

// envPrefix is prepended to every key when it is looked up in the environment
const envPrefix = "SEQBUFFER_"

// keys understood by the configuration
const (
	growthFactorKey = "GROWTH_FACTOR"
	byteOrderKey    = "BYTE_ORDER"
	loggingKey      = "LOGGING"
)

var configKeys = []string{growthFactorKey, byteOrderKey, loggingKey}

// defaults applied to every new buffer before its options
var (
	defaultGrowthFactor float64
	defaultOrder        = BigEndian
)

// initConfig initializes the configuration defaults
//
// values are read from the file named by SEQBUFFER_CONF first, and then
// overridden by SEQBUFFER_<KEY> environment variables. Invalid values are
// reported and the built in defaults are kept for them.
func initConfig() error {
	defaultGrowthFactor, defaultOrder = 0, BigEndian
	config = make(map[string]string)

	var err error

	confPath = os.Getenv(envPrefix + "CONF")
	if confPath != "" {
		err = multierr.Append(err, readConfigFile(confPath))
	}

	for _, key := range configKeys {
		if val, ok := os.LookupEnv(envPrefix + key); ok {
			config[key] = val
		}
	}

	return multierr.Append(err, applyConfig())
}

func readConfigFile(loc string) error {
	f, err := os.Open(loc)
	if err != nil {
		return errors.Wrap(err, "cannot open configuration file")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		t := strings.TrimSpace(scanner.Text())
		if matches := pat.FindStringSubmatch(t); matches != nil {
			config[matches[1]] = strings.TrimSpace(matches[2])
		}
	}

	return errors.Wrap(scanner.Err(), "cannot read configuration file")
}

func applyConfig() error {
	var err error

	if val, ok := config[growthFactorKey]; ok {
		f, perr := parseGrowthFactor(val)
		if perr != nil {
			err = multierr.Append(err, perr)
		} else {
			defaultGrowthFactor = f
		}
	}

	if val, ok := config[byteOrderKey]; ok {
		o, perr := ParseByteOrder(val)
		if perr != nil {
			err = multierr.Append(err, perr)
		} else {
			defaultOrder = o
		}
	}

	if val, ok := config[loggingKey]; ok {
		enable, perr := strconv.ParseBool(val)
		if perr != nil {
			err = multierr.Append(err, errors.Wrapf(ErrInvalidConfiguration, "%s=%q", loggingKey, val))
		} else {
			EnableLogging(enable)
		}
	}

	return err
}

// parseGrowthFactor accepts either a number or a boolean shorthand
func parseGrowthFactor(val string) (float64, error) {
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		enable, berr := strconv.ParseBool(val)
		if berr != nil {
			return 0, errors.Wrapf(ErrInvalidConfiguration, "%s=%q", growthFactorKey, val)
		}
		return growthFactorFromBool(enable), nil
	}

	if err := validateGrowthFactor(f); err != nil {
		return 0, err
	}

	return f, nil
}
