package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/crewdeck-dev/deploy-manager/backend/internal/config"
	"github.com/crewdeck-dev/deploy-manager/backend/internal/repository"
	"github.com/crewdeck-dev/deploy-manager/backend/internal/seed"
	"github.com/crewdeck-dev/deploy-manager/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operation to run (1: random users, 2: sample roster, 3: staffing rules, 4: sample schedule, 5: everything)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not touch the network, so ping explicitly.
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		logger.Error("no operation given")
	case 1:
		if n <= 0 {
			logger.Error("the user count must be positive")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain)
				if err != nil {
					logger.Error("failed to generate random user", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateUser(user); err != nil {
					logger.Error("failed to insert user", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			logger.Info("users inserted", slog.Int("count", n-cnt))
		}
	case 2:
		seed.SeedStaff(repo)
		cnt := 0
		for i := 0; i < n; i++ {
			if err := repo.CreateStaff(utils.GenerateRandomStaff()); err != nil {
				logger.Error("failed to insert staff record", slog.String("error", err.Error()))
				continue
			}
			cnt++
		}
		logger.Info("random staff inserted", slog.Int("count", cnt))
	case 3:
		seed.SeedRules(repo)
	case 4:
		seed.SeedSchedule(repo)
	case 5:
		seed.SeedStaff(repo)
		seed.SeedRules(repo)
		seed.SeedSchedule(repo)
	default:
		logger.Error("unknown operation", slog.Int("op", op))
	}
}
