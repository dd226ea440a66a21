package main

import (
	"os"
	"strings"
	"time"

	"github.com/apex/log"
	. "gopkg.in/check.v1"
)

type ConfigSuite struct{}

var _ = Suite(&ConfigSuite{})

func (s *ConfigSuite) TearDownTest(c *C) {
	for _, key := range []string{"ZBC_ADDR", "ZBC_SESSION_TTL", "ZBC_IDLE_INTERVAL", "ZBC_LOG_LEVEL"} {
		c.Assert(os.Unsetenv(key), IsNil)
	}
}

func (s *ConfigSuite) TestDefaults(c *C) {
	cfg, err := loadConfig(nil)
	c.Assert(err, IsNil)
	c.Assert(cfg.Addr, Equals, ":8080")
	c.Assert(cfg.SessionTTL, Equals, 30*time.Minute)
	c.Assert(cfg.IdleInterval, Equals, time.Minute)
	c.Assert(cfg.LogLevel, Equals, log.InfoLevel)
}

func (s *ConfigSuite) TestEnvironment(c *C) {
	c.Assert(os.Setenv("ZBC_ADDR", ":9090"), IsNil)
	c.Assert(os.Setenv("ZBC_SESSION_TTL", "5m"), IsNil)
	c.Assert(os.Setenv("ZBC_LOG_LEVEL", "debug"), IsNil)
	cfg, err := loadConfig(nil)
	c.Assert(err, IsNil)
	c.Assert(cfg.Addr, Equals, ":9090")
	c.Assert(cfg.SessionTTL, Equals, 5*time.Minute)
	c.Assert(cfg.LogLevel, Equals, log.DebugLevel)
}

func (s *ConfigSuite) TestFlagsOverrideEnvironment(c *C) {
	c.Assert(os.Setenv("ZBC_ADDR", ":9090"), IsNil)
	cfg, err := loadConfig([]string{"-addr", ":7070", "-idle-interval", "10s"})
	c.Assert(err, IsNil)
	c.Assert(cfg.Addr, Equals, ":7070")
	c.Assert(cfg.IdleInterval, Equals, 10*time.Second)
}

func (s *ConfigSuite) TestInvalid(c *C) {
	_, err := loadConfig([]string{"-log-level", "loud"})
	c.Assert(err, NotNil)
	_, err = loadConfig([]string{"-session-ttl", "0s"})
	c.Assert(err, ErrorMatches, "session-ttl and idle-interval must be positive")
	c.Assert(os.Setenv("ZBC_IDLE_INTERVAL", "often"), IsNil)
	_, err = loadConfig(nil)
	c.Assert(err, ErrorMatches, "ZBC_IDLE_INTERVAL: .*")
}

func (s *ConfigSuite) TestColorBoard(c *C) {
	colored := colorBoard(" K k - \n")
	c.Assert(strings.Contains(colored, "\x1b["), Equals, true)
	c.Assert(strings.HasSuffix(colored, " \n"), Equals, true)
	c.Assert(strings.Count(colored, "K"), Equals, 1)
}
