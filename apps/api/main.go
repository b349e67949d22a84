package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"

	echoapi "github.com/aliHasanov22/holb-st-m/apps/api/echo"
	"github.com/aliHasanov22/holb-st-m/core"
	"github.com/aliHasanov22/holb-st-m/core/attendance"
	"github.com/aliHasanov22/holb-st-m/core/geo"
	"github.com/aliHasanov22/holb-st-m/core/note"
	"github.com/aliHasanov22/holb-st-m/core/study"
	"github.com/aliHasanov22/holb-st-m/core/task"
	"github.com/aliHasanov22/holb-st-m/core/user"
	emailsvc "github.com/aliHasanov22/holb-st-m/services/email"
	logsvc "github.com/aliHasanov22/holb-st-m/services/logger"
	aisvc "github.com/aliHasanov22/holb-st-m/services/summarizer"
	"github.com/aliHasanov22/holb-st-m/storage/database"
	"github.com/aliHasanov22/holb-st-m/storage/inmem"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		core.Conf,
	)
	logger.Enable(!core.Conf.Debug)

	db, err := setUpDB()
	if err != nil {
		logger.Error(fmt.Sprintf("setting up database: %v", err), err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}

	taskSvc := task.NewService(database.NewTaskRepository(db), database.NewSummaryRepository(db))
	studySvc := study.NewService(database.NewStudyRepository(db))
	attendanceSvc := attendance.NewService(database.NewAttendanceRepository(db))
	noteSvc := note.NewService(database.NewNoteRepository(db), aisvc.NewNaiveService())
	userSvc := user.NewService(database.NewUserRepository(db), mailSvc)
	sessions := inmem.NewSessionStore()

	fence := geo.Fence{
		Lat:               core.Conf.Campus.Lat,
		Lon:               core.Conf.Campus.Lon,
		MaxDistanceMeters: core.Conf.Campus.MaxDistanceMeters,
	}

	// =========================================================================
	// Start API Service

	logger.Info(fmt.Sprintf("Application initializing : env %q", core.Conf.Env))
	defer logger.Info("Application stopped")

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	server := echoapi.NewServer(&echoapi.Options{
		Address:        core.Conf.Server.Address(),
		Logger:         logger,
		SignalShutdown: func() { shutdown <- syscall.SIGTERM },

		TaskSvc:       taskSvc,
		StudySvc:      studySvc,
		AttendanceSvc: attendanceSvc,
		NoteSvc:       noteSvc,
		UserSvc:       userSvc,
		Sessions:      sessions,
		Fence:         fence,
	})

	go server.Start()

	// =========================================================================
	// Shutdown

	sig := <-shutdown
	logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

	// give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), core.Conf.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)
	}
}

func setUpDB() (*sqlx.DB, error) {
	if err := database.CreateIfNotExist(core.Conf); err != nil {
		return nil, err
	}

	db, err := database.Open(core.Conf)
	if err != nil {
		return nil, err
	}

	if err = database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
