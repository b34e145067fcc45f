package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"background-jobs/jobs"
	"background-jobs/jobs/domain"
	"background-jobs/jobs/infra"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := readConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	cmds := os.Args[1:]
	if len(cmds) == 0 {
		log.Fatalf("usage: runner <command> [<command> ...]")
	}

	var statsStore domain.StatsStore
	if cfg.statsEnabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.statsRedisAddr,
			Password: cfg.statsRedisPassword,
			DB:       cfg.statsRedisDB,
		})
		defer func() { _ = rdb.Close() }()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		_, err := rdb.Ping(pingCtx).Result()
		cancel()
		if err != nil {
			log.Fatalf("redis stats ping error: %v", err)
		}

		statsStore = infra.NewRedisStatsStore(
			rdb,
			infra.WithStatsPrefix(cfg.statsPrefix),
			infra.WithStatsTTL(cfg.statsTTL),
			infra.WithStatsBucket(cfg.statsBucket),
			infra.WithStatsTrackNames(cfg.statsTrackNames),
		)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Printf("jobs: limit=%d launchRPS=%.3f launchBurst=%d", cfg.limit, cfg.launchRPS, cfg.launchBurst)
	log.Printf("jobs-stats: enabled=%v redisAddr=%q bucket=%q ttl=%s trackNames=%v",
		cfg.statsEnabled, cfg.statsRedisAddr, cfg.statsBucket, cfg.statsTTL, cfg.statsTrackNames)

	start := time.Now()

	type output struct {
		cmd string
		out string
	}

	futures, err := jobs.Run(jobs.Options{
		Limit:       cfg.limit,
		LaunchRPS:   cfg.launchRPS,
		LaunchBurst: cfg.launchBurst,
		Stats:       statsStore,
	}, func(l *jobs.Launcher) []*jobs.Future[output] {
		fs := make([]*jobs.Future[output], 0, len(cmds))
		for i, c := range cmds {
			c := c
			name := "cmd-" + strconv.Itoa(i+1)
			fs = append(fs, jobs.Go(l, ctx, name, func(ctx context.Context) (output, error) {
				log.Printf("%s: start: %s", name, c)
				out, err := exec.CommandContext(ctx, "/bin/sh", "-c", c).CombinedOutput()
				if err != nil {
					return output{cmd: c, out: string(out)}, err
				}
				return output{cmd: c, out: string(out)}, nil
			}))
		}
		return fs
	})

	for _, f := range futures {
		o, ferr := f.Wait()
		if ferr != nil {
			log.Printf("failed: %v", ferr)
			continue
		}
		log.Printf("done: %s", o.cmd)
		if s := strings.TrimSpace(o.out); s != "" {
			log.Printf("output:\n%s", s)
		}
	}

	log.Printf("all jobs finished in %s", time.Since(start))

	if err != nil {
		os.Exit(1)
	}
}

type config struct {
	limit       int
	launchRPS   float64
	launchBurst int

	statsEnabled       bool
	statsRedisAddr     string
	statsRedisPassword string
	statsRedisDB       int
	statsPrefix        string
	statsTTL           time.Duration
	statsBucket        string
	statsTrackNames    bool
}

func readConfig() (config, error) {
	cfg := config{}
	cfg.limit = getenvIntDefault("JOBS_LIMIT", 4)
	cfg.launchRPS = getenvFloatDefault("JOBS_LAUNCH_RPS", 0)
	cfg.launchBurst = getenvIntDefault("JOBS_LAUNCH_BURST", 1)

	cfg.statsEnabled = getenvBoolDefault("JOBS_STATS_ENABLED", false)
	cfg.statsRedisAddr = getenvDefault("JOBS_STATS_REDIS_ADDR", "")
	cfg.statsRedisPassword = os.Getenv("JOBS_STATS_REDIS_PASSWORD")
	cfg.statsRedisDB = getenvIntDefault("JOBS_STATS_REDIS_DB", 0)
	cfg.statsPrefix = getenvDefault("JOBS_STATS_PREFIX", "jobs:stats")
	cfg.statsTTL = getenvDurationDefault("JOBS_STATS_TTL", 24*time.Hour)
	cfg.statsBucket = getenvDefault("JOBS_STATS_BUCKET", "minute")
	cfg.statsTrackNames = getenvBoolDefault("JOBS_STATS_TRACK_NAMES", false)

	if cfg.limit <= 0 {
		return config{}, errors.New("JOBS_LIMIT must be > 0")
	}
	if cfg.launchRPS < 0 {
		return config{}, errors.New("JOBS_LAUNCH_RPS must be >= 0")
	}
	if cfg.statsEnabled && strings.TrimSpace(cfg.statsRedisAddr) == "" {
		return config{}, errors.New("JOBS_STATS_REDIS_ADDR is required when JOBS_STATS_ENABLED=true")
	}
	return cfg, nil
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvIntDefault(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getenvFloatDefault(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getenvBoolDefault(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getenvDurationDefault(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
