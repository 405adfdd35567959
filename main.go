package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	flagConfig  = flag.String("config", "", "TOML or YAML config file")
	flagHost    = flag.String("host", "", "host to bind (default any)")
	flagPort    = flag.Int("port", 0, "port to listen on (0 asks on the terminal)")
	flagRoot    = flag.String("root", "", "document root (default current directory)")
	flagPage404 = flag.String("page404", "", "file served on 404 instead of the built-in page")
	flagLog     = flag.String("log", "", "log file (default pretty-printed stderr)")
)

func main() {
	flag.Parse()

	cfg := DefaultConfig()
	if *flagConfig != "" {
		var err error
		if cfg, err = LoadConfig(*flagConfig); err != nil {
			fmt.Fprintln(color.Error, color.RedString("config: %v", err))
			os.Exit(1)
		}
	}
	if *flagHost != "" {
		cfg.Host = *flagHost
	}
	if *flagRoot != "" {
		cfg.HomeDir = *flagRoot
	}
	if *flagPage404 != "" {
		cfg.Page404 = *flagPage404
	}
	if *flagLog != "" {
		cfg.LogFile = *flagLog
	}

	log, err := OpenLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(color.Error, color.RedString("log: %v", err))
		os.Exit(1)
	}
	defer log.Close()

	cfg.Port = choosePort(*flagPort, cfg, log)

	server, err := NewWebServer(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("server setup failed")
	}
	color.Green("Serving %s on %s:%d", cfg.HomeDir, cfg.Host, cfg.Port)
	if err := server.Start(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// choosePort settles the listening port: take the flag, or ask on a
// terminal, or fall back to the configured port; when the pick is
// invalid or taken, fall back to the configured port, and when that
// is taken too, probe the dynamic range for a free one.
func choosePort(flagPort int, cfg Config, log *Logger) int {
	var input string
	switch {
	case flagPort > 0:
		input = strconv.Itoa(flagPort)
	case isatty.IsTerminal(os.Stdin.Fd()):
		input = promptPort()
	default:
		input = strconv.Itoa(cfg.Port)
	}

	port, err := ParsePort(input)
	if err == nil && CheckPortOpen(cfg.Host, port) {
		return port
	}
	if err != nil {
		color.Yellow("Port %q is not usable, falling back to %d", input, cfg.Port)
	} else {
		color.Yellow("Port %d is already taken, falling back to %d", port, cfg.Port)
	}

	if !CheckPortOpen(cfg.Host, cfg.Port) {
		color.Yellow("Port %d is already taken as well, probing for a random free port..", cfg.Port)
		port = RandomFreePort(cfg.Host, log)
		color.Yellow("Settled on port %d", port)
		return port
	}
	return cfg.Port
}

func promptPort() string {
	fmt.Print(color.CyanString("Enter a port number for the server -> "))
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return ""
	}
	return scanner.Text()
}
