// Command ofdump decodes openflow 1.3 traffic and prints one line per
// message.
//
//	ofdump [flags] [file]       raw frame stream from file or stdin
//	ofdump -hex 04000008...     frames given as hex
//	ofdump -pcap trace.pcapng   frames carried over TCP in a capture
package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var logger = logging.MustGetLogger("ofdump")

func main() {
	configPath := flag.String("config", "", "TOML configuration file")
	hexInput := flag.String("hex", "", "decode frames given as a hex string")
	pcapPath := flag.String("pcap", "", "decode frames from a pcap or pcapng capture")
	logLevel := flag.String("log", "", "log level (CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG)")
	validate := flag.Bool("validate", true, "validate every decoded message")
	dump := flag.Bool("dump", false, "dump the decoded values")
	dissect := flag.Bool("dissect", false, "dissect packet_in and packet_out payloads")
	flag.Parse()

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log":
			cfg.LogLevel = strings.ToUpper(*logLevel)
		case "validate":
			cfg.Validate = *validate
		case "dump":
			cfg.Dump = *dump
		case "dissect":
			cfg.Dissect = *dissect
		}
	})
	initLog(cfg.LogLevel)

	d := &dumper{cfg: cfg, out: os.Stdout}
	if err := run(d, *hexInput, *pcapPath, flag.Args()); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
	logger.Info(d.summary())
	if d.broken > 0 || d.invalid > 0 {
		os.Exit(1)
	}
}

func run(d *dumper, hexInput, pcapPath string, args []string) error {
	switch {
	case hexInput != "":
		data, err := decodeHex(hexInput)
		if err != nil {
			return err
		}
		return d.stream(bytes.NewReader(data))
	case pcapPath != "":
		f, err := os.Open(pcapPath)
		if err != nil {
			return errors.Wrap(err, "failed to open capture")
		}
		defer f.Close()
		return d.capture(f)
	}

	var r io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "failed to open stream")
		}
		defer f.Close()
		r = f
	}
	return d.stream(r)
}

// decodeHex accepts whitespace and colons between digits.
func decodeHex(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':':
			return -1
		}
		return r
	}, s)
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "bad hex input")
	}
	return data, nil
}

func initLog(level string) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(`%{level}: %{shortpkg}.%{shortfunc}: %{message}`))

	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.WARNING
	}
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
	if err != nil {
		logger.Warningf("invalid log level %q, using WARNING", level)
	}
}
