package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"neoncity.dev/internal/persistence/indexdb"
	persistlog "neoncity.dev/internal/persistence/log"
	"neoncity.dev/internal/persistence/snapshot"
	"neoncity.dev/internal/sim/session"
	"neoncity.dev/internal/sim/tuning"
	"neoncity.dev/internal/transport/ws"
)

func main() {
	var (
		addr       = flag.String("addr", "", "http listen address (default from tuning)")
		configDir  = flag.String("configs", "./configs", "config directory")
		dataDir    = flag.String("data", "", "runtime data directory (default from tuning)")
		tuningPath = flag.String("tuning", "", "path to tuning.yaml (default: <configs>/tuning.yaml)")
		seed       = flag.Int64("seed", 0, "override world seed")
		disableDB  = flag.Bool("disable_db", false, "disable the sqlite index")
		loadLatest = flag.Bool("load_latest_snapshot", true, "resume the war from the latest snapshot if present")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lmicroseconds)

	tp := strings.TrimSpace(*tuningPath)
	if tp == "" {
		tp = filepath.Join(*configDir, "tuning.yaml")
	}
	tune, err := tuning.Load(tp)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Printf("tuning not found (%s); using defaults", tp)
			tune.ApplyDefaults()
		} else {
			logger.Fatalf("load tuning: %v", err)
		}
	}
	if *seed != 0 {
		tune.Seed = *seed
	}
	if *addr != "" {
		tune.ListenAddr = *addr
	}
	if *dataDir != "" {
		tune.DataDir = *dataDir
	}

	sess := session.New(tune)

	// Event persistence: compressed JSONL plus the sqlite index.
	eventLog, err := persistlog.NewEventLogger(tune.DataDir)
	if err != nil {
		logger.Fatalf("open event log: %v", err)
	}
	defer eventLog.Close()

	var idx *indexdb.SQLiteIndex
	if !*disableDB {
		idx, err = indexdb.Open(tune.DataDir)
		if err != nil {
			logger.Fatalf("open index: %v", err)
		}
		defer idx.Close()
	}
	sess.SetEventLogger(teeEvents{eventLog, idx})

	// Resume the war from the newest snapshot, when asked and available.
	snapDir := filepath.Join(tune.DataDir, "snapshots")
	if *loadLatest {
		if path, err := snapshot.Latest(snapDir); err == nil && path != "" {
			snap, err := snapshot.Read(path)
			if err != nil {
				logger.Fatalf("read snapshot %s: %v", path, err)
			}
			sess.RestoreWar(snap.War)
			logger.Printf("resumed war at tick %d from %s", snap.Header.Tick, path)
		}
	}

	// Snapshot writing runs off the loop goroutine.
	snapCh := make(chan session.WarSnapshot, 4)
	sess.SetSnapshotSink(snapCh)
	go func() {
		for s := range snapCh {
			path, err := snapshot.Write(snapDir, s.Seed, s.War)
			if err != nil {
				logger.Printf("write snapshot: %v", err)
				continue
			}
			if idx != nil {
				idx.WriteSnapshot(indexdb.SnapshotRow{
					Tick:  s.War.Tick,
					Path:  path,
					Seed:  s.Seed,
					Bases: len(s.War.Bases),
					Units: len(s.War.Units),
				})
			}
			logger.Printf("snapshot written: %s", path)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := sess.Run(ctx); err != nil && err != context.Canceled {
			logger.Printf("session loop: %v", err)
		}
	}()

	wsServer := ws.NewServer(sess, logger)
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/ws", wsServer.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{Addr: tune.ListenAddr, Handler: mux}
	go func() {
		logger.Printf("listening on %s", tune.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	logger.Printf("shutting down")

	sess.Stop()
	close(snapCh)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}

// teeEvents fans event writes out to the JSONL log and the sqlite index.
type teeEvents struct {
	log *persistlog.EventLogger
	idx *indexdb.SQLiteIndex
}

func (t teeEvents) WriteEvent(tick uint64, text string) error {
	err := t.log.WriteEvent(tick, text)
	if t.idx != nil {
		_ = t.idx.WriteEvent(tick, text)
	}
	return err
}
