package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/go-pkgz/lgr"
	"github.com/umputun/go-flags"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/umputun/tasklist/app/cmd"
)

// Opts with all cli commands and flags
type Opts struct {
	AddCmd    cmd.AddCommand    `command:"add" description:"add a new task"`
	ListCmd   cmd.ListCommand   `command:"list" description:"list all tasks"`
	DoneCmd   cmd.DoneCommand   `command:"done" description:"toggle task completion"`
	RemoveCmd cmd.RemoveCommand `command:"remove" description:"remove task and renumber the rest"`
	SchemaCmd cmd.SchemaCommand `command:"schema" description:"print JSON schema of the task file"`

	File    string `short:"f" long:"file" env:"TASKS_FILE" default:"tasks.json" description:"task file location"`
	Version bool   `short:"V" long:"version" description:"show version and exit"`
	Dbg     bool   `long:"dbg" env:"DEBUG" description:"debug mode"`

	Log struct {
		Enabled         bool   `long:"enabled" env:"ENABLED" description:"enable logging"`
		Filename        string `long:"filename" env:"FILENAME" description:"file to write logs to, stderr if empty"`
		MaxSize         int    `long:"max-size" env:"MAX_SIZE" default:"10" description:"maximum size in megabytes before rotation"`
		MaxBackups      int    `long:"max-backups" env:"MAX_BACKUPS" default:"3" description:"maximum number of old log files to retain"`
		MaxAge          int    `long:"max-age" env:"MAX_AGE" default:"30" description:"maximum number of days to retain old log files"`
		EnabledCompress bool   `long:"enabled-compress" env:"ENABLED_COMPRESS" description:"compress rotated log files"`
	} `group:"log" namespace:"log" env-namespace:"TASKS_LOG"`
}

var opts Opts

var revision = "unknown"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run parses args and executes the selected command, returns exit code
func run(args []string, stdout io.Writer) int {
	opts = Opts{}
	p := flags.NewParser(&opts, flags.Default)
	p.SubcommandsOptional = true
	p.CommandHandler = func(command flags.Commander, cmdArgs []string) error {
		if opts.Version {
			_, _ = fmt.Fprintf(stdout, "tasklist %s\n", revision)
			return nil
		}
		if command == nil {
			p.WriteHelp(stdout)
			return nil
		}

		setupLogs()
		log.Printf("[DEBUG] task file %s", opts.File)

		c, ok := command.(cmd.CommonOptionsCommander)
		if !ok {
			return fmt.Errorf("unexpected command %T", command)
		}
		c.SetCommon(cmd.CommonOpts{File: opts.File, Stdout: stdout})
		err := c.Execute(cmdArgs)
		if err != nil {
			log.Printf("[ERROR] failed with %+v", err)
		}
		return err
	}

	if _, err := p.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				return 0
			}
			return 2
		}
		return 1
	}
	return 0
}

// setupLogs configures lgr. Logging is off unless enabled or debug mode requested,
// output goes to rotated file if filename set, to stderr otherwise. Returns the log writer.
func setupLogs() io.Writer {
	if !opts.Log.Enabled && !opts.Dbg {
		log.Setup(log.Out(io.Discard), log.Err(io.Discard))
		return io.Discard
	}

	var out io.Writer = os.Stderr
	if opts.Log.Filename != "" {
		out = &lumberjack.Logger{
			Filename:   opts.Log.Filename,
			MaxSize:    opts.Log.MaxSize,
			MaxBackups: opts.Log.MaxBackups,
			MaxAge:     opts.Log.MaxAge,
			Compress:   opts.Log.EnabledCompress,
		}
	}

	logOpts := []log.Option{log.Out(out), log.Err(out), log.Msec, log.LevelBraces}
	if opts.Dbg {
		logOpts = append(logOpts, log.Debug, log.CallerFunc, log.CallerPkg)
	}
	log.Setup(logOpts...)
	return out
}
