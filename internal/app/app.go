package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kashyyyk/hotel/internal/config"
	"github.com/kashyyyk/hotel/internal/hotel"
	"github.com/kashyyyk/hotel/internal/idgen/digit"
	"github.com/kashyyyk/hotel/internal/logger"
	"github.com/kashyyyk/hotel/internal/storage/bookingfile"
	"github.com/kashyyyk/hotel/internal/transport/cli"
)

func Run(l *logger.Logger) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		l.LogWarnf("No .env file found, using defaults")
	}

	conf := config.Load()

	store := bookingfile.New(bookingfile.Config{
		L:    l,
		Path: conf.BookingFile,
	})

	idGen := digit.New(time.Now().UnixNano())

	manager := hotel.New(l, store, idGen, conf.MaxStayDays)

	front := cli.New(cli.Conf{
		L:           l,
		In:          os.Stdin,
		Out:         os.Stdout,
		Currency:    conf.Currency,
		MaxStayDays: conf.MaxStayDays,
	}, manager)

	l.LogInfo("Front desk is running, booking file: %v", store.Path())

	if err := front.Run(ctx); err != nil {
		return fmt.Errorf("run front desk: %w", err)
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
