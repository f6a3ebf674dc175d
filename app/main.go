package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/umputun/go-flags"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/umputun/talentflow/app/backup"
	"github.com/umputun/talentflow/app/client"
	"github.com/umputun/talentflow/app/importer"
	"github.com/umputun/talentflow/app/jobs"
	"github.com/umputun/talentflow/app/notify"
	"github.com/umputun/talentflow/app/store"
	"github.com/umputun/talentflow/app/web"
)

var opts struct {
	Listen string `short:"l" long:"listen" env:"TALENTFLOW_LISTEN" default:":8080" description:"listen address"`

	Store struct {
		Type          string `long:"type" env:"TYPE" default:"sqlite" description:"store type, sqlite, memory or redis"`
		Path          string `long:"path" env:"PATH" default:"talentflow.db" description:"sqlite database file"`
		RedisAddr     string `long:"redis-addr" env:"REDIS_ADDR" default:"localhost:6379" description:"redis address"`
		RedisPassword string `long:"redis-password" env:"REDIS_PASSWORD" description:"redis password"`
		RedisDB       int    `long:"redis-db" env:"REDIS_DB" default:"0" description:"redis database"`
		RedisPrefix   string `long:"redis-prefix" env:"REDIS_PREFIX" default:"talentflow:" description:"redis key prefix"`
	} `group:"store" namespace:"store" env-namespace:"TALENTFLOW_STORE"`

	API struct {
		TestMode     bool    `long:"test-mode" env:"TEST_MODE" description:"simulate random reorder failures"`
		PasswordHash string  `long:"password-hash" env:"PASSWORD_HASH" description:"bcrypt hash of basic auth password for writes"`
		WriteLimit   float64 `long:"write-limit" env:"WRITE_LIMIT" default:"0" description:"write requests per second, 0 disables"`
	} `group:"api" namespace:"api" env-namespace:"TALENTFLOW_API"`

	Notify struct {
		Webhooks []string      `long:"webhook" env:"WEBHOOK" env-delim:"," description:"webhook url(s) for job events"`
		Timeout  time.Duration `long:"timeout" env:"TIMEOUT" default:"10s" description:"webhook timeout"`
	} `group:"notify" namespace:"notify" env-namespace:"TALENTFLOW_NOTIFY"`

	Backup struct {
		Dir      string `long:"dir" env:"DIR" description:"snapshots directory, disabled if empty"`
		Schedule string `long:"schedule" env:"SCHEDULE" default:"@daily" description:"snapshot schedule, crontab format"`
		Keep     int    `long:"keep" env:"KEEP" default:"7" description:"snapshots to keep, 0 keeps all"`
	} `group:"backup" namespace:"backup" env-namespace:"TALENTFLOW_BACKUP"`

	Import struct {
		File        string `long:"file" env:"FILE" description:"import jobs from yaml or json file and exit"`
		Server      string `long:"server" env:"SERVER" default:"http://localhost:8080" description:"api server for import"`
		Password    string `long:"password" env:"PASSWORD" description:"basic auth password for import"`
		Concurrency int    `long:"concurrency" env:"CONCURRENCY" default:"4" description:"parallel import requests"`
		Attempts    int    `long:"attempts" env:"ATTEMPTS" default:"3" description:"attempts per job on server errors"`
	} `group:"import" namespace:"import" env-namespace:"TALENTFLOW_IMPORT"`

	Log struct {
		Enabled         bool   `long:"enabled" env:"ENABLED" description:"enable logging"`
		Debug           bool   `long:"debug" env:"DEBUG" description:"debug mode"`
		Filename        string `long:"file" env:"FILE" description:"log file, stdout if empty"`
		MaxSize         int    `long:"max-size" env:"MAX_SIZE" default:"100" description:"max log file size in megabytes"`
		MaxAge          int    `long:"max-age" env:"MAX_AGE" default:"0" description:"max days to retain old log files"`
		MaxBackups      int    `long:"max-backups" env:"MAX_BACKUPS" default:"7" description:"max old log files to retain"`
		EnabledCompress bool   `long:"compress" env:"COMPRESS" description:"compress rotated log files"`
	} `group:"log" namespace:"log" env-namespace:"TALENTFLOW_LOG"`
}

var revision = "unknown"

func main() {
	fmt.Printf("talentflow %s\n", revision)

	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(2)
	}
	if lj, ok := setupLogs().(*lumberjack.Logger); ok {
		defer lj.Close()
	}

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel) // handle SIGQUIT and SIGTERM

	if opts.Import.File != "" {
		if err := runImport(ctx); err != nil {
			log.Printf("[ERROR] import failed, %v", err)
			os.Exit(1)
		}
		return
	}

	if err := run(ctx); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	st, err := store.New(ctx, store.Params{Type: opts.Store.Type, Path: opts.Store.Path, RedisAddr: opts.Store.RedisAddr,
		RedisPassword: opts.Store.RedisPassword, RedisDB: opts.Store.RedisDB, RedisPrefix: opts.Store.RedisPrefix})
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", opts.Store.Type, err)
	}
	defer func() {
		if e := st.Close(); e != nil {
			log.Printf("[WARN] failed to close store, %v", e)
		}
	}()

	repo := jobs.NewRepository(st)
	if err = repo.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize jobs: %w", err)
	}

	if opts.Backup.Dir != "" {
		snap := &backup.Snapshotter{Source: repo, Dir: opts.Backup.Dir, Keep: opts.Backup.Keep}
		go func() {
			if e := snap.Run(ctx, opts.Backup.Schedule); e != nil {
				log.Printf("[WARN] backup scheduler failed, %v", e)
			}
		}()
	}

	srv, err := web.New(makeWebConfig(repo))
	if err != nil {
		return fmt.Errorf("failed to create web server: %w", err)
	}
	return srv.Run(ctx, opts.Listen)
}

func makeWebConfig(repo web.Repository) web.Config {
	cfg := web.Config{
		Repository:   repo,
		Version:      revision,
		PasswordHash: opts.API.PasswordHash,
		WriteLimit:   opts.API.WriteLimit,
	}
	if opts.API.TestMode {
		log.Printf("[INFO] test mode, %.0f%% of reorder requests fail", web.TestModeFailureRate*100)
		cfg.ReorderFailureRate = web.TestModeFailureRate
	}
	if n := makeNotifier(); n != nil {
		cfg.Notifier = n // assigned only when set, nil *Webhooks is not a nil Notifier
	}
	return cfg
}

func makeNotifier() *notify.Webhooks {
	return notify.NewWebhooks(opts.Notify.Webhooks, opts.Notify.Timeout)
}

func runImport(ctx context.Context) error {
	inputs, err := importer.LoadFile(opts.Import.File)
	if err != nil {
		return err
	}

	var copts []client.Option
	if opts.Import.Password != "" {
		copts = append(copts, client.WithBasicAuth("talentflow", opts.Import.Password))
	}
	im := importer.Importer{
		API:         client.New(opts.Import.Server, copts...),
		Concurrency: opts.Import.Concurrency,
		Repeater:    importer.NewRepeater(opts.Import.Attempts, time.Second),
	}
	rep := im.Import(ctx, inputs)
	log.Printf("[INFO] import from %s completed, created: %d, skipped: %d, failed: %d",
		opts.Import.File, rep.Created, rep.Skipped, rep.Failed)
	if rep.Failed > 0 {
		return errors.Join(rep.Errors...)
	}
	return nil
}

// setupLogs configures lgr and returns the writer used for output
func setupLogs() io.Writer {
	if !opts.Log.Enabled {
		log.Setup(log.Out(io.Discard), log.Err(io.Discard))
		return os.Stdout
	}

	var out io.Writer = os.Stdout
	if opts.Log.Filename != "" {
		out = &lumberjack.Logger{
			Filename:   opts.Log.Filename,
			MaxSize:    opts.Log.MaxSize,
			MaxBackups: opts.Log.MaxBackups,
			MaxAge:     opts.Log.MaxAge,
			Compress:   opts.Log.EnabledCompress,
		}
	}

	if opts.Log.Debug {
		log.Setup(log.Debug, log.Msec, log.CallerFunc, log.CallerPkg, log.CallerFile, log.Out(out), log.Err(out))
		return out
	}
	log.Setup(log.Msec, log.Out(out), log.Err(out))
	return out
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			if sig == syscall.SIGQUIT { // catch SIGQUIT and print stack traces
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
				continue
			}
			cancel() // terminate on SIGTERM
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
