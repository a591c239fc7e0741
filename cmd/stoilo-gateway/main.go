package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
	"github.com/stoilo/stoilo/go/gateway"
	"github.com/stoilo/stoilo/go/launcher"
	pt "github.com/stoilo/stoilo/go/protocols/task"
	"github.com/stoilo/stoilo/go/taskstore"
	pb "go.gazette.dev/core/broker/protocol"
	mbp "go.gazette.dev/core/mainboilerplate"
	"go.gazette.dev/core/task"
	"google.golang.org/grpc"
)

const iniFilename = "stoilo.ini"

// Config is the top-level configuration object of the stoilo gateway.
var Config = new(struct {
	TaskService struct {
		Host     string `long:"host" env:"HOST" required:"true" description:"Address to listen on"`
		Port     uint16 `long:"port" env:"PORT" required:"true" description:"Port to listen on"`
		PoolSize int    `long:"pool-size" env:"POOL_SIZE" required:"true" description:"Database connection pool size, and gRPC stream worker count"`
	} `group:"Task Service" namespace:"task-service" env-namespace:"TASK_SERVICE"`

	Database taskstore.Config `group:"Database" namespace:"db" env-namespace:"DB"`

	VCH struct {
		ProjectDir      string `long:"project-dir" env:"PROJECT_DIR" required:"true" description:"VCH project root directory"`
		AppPrefix       string `long:"app-prefix" env:"APP_PREFIX" default:"stoilo" description:"VCH application name prefix"`
		TemplateVersion string `long:"template-version" env:"TEMPLATE_VERSION" default:"2.0" description:"Workunit template version"`
	} `group:"VCH" namespace:"vch" env-namespace:"VCH"`

	Log         mbp.LogConfig         `group:"Logging" namespace:"log" env-namespace:"LOG"`
	Diagnostics mbp.DiagnosticsConfig `group:"Debug" namespace:"debug" env-namespace:"DEBUG"`
})

type cmdServe struct{}

func (cmdServe) Execute(_ []string) error {
	defer mbp.InitDiagnosticsAndRecover(Config.Diagnostics)()
	mbp.InitLog(Config.Log)

	log.WithFields(log.Fields{
		"config":    Config,
		"version":   mbp.Version,
		"buildDate": mbp.BuildDate,
	}).Info("gateway configuration")
	pb.RegisterGRPCDispatcher("local")

	// The staging directory is owned by the gateway, under the project root
	// so that relative staged paths resolve for the VCH tools.
	var stageDir = filepath.Join(Config.VCH.ProjectDir, "stoilo_stage_tmp")
	if err := os.MkdirAll(stageDir, 0755); err != nil {
		return fmt.Errorf("creating staging directory: %w", err)
	}

	store, err := taskstore.Open(Config.Database, Config.TaskService.PoolSize)
	mbp.Must(err, "opening task store")
	defer store.Close()

	var api = gateway.NewAPI(store, &launcher.Launcher{
		ProjectDir:      Config.VCH.ProjectDir,
		AppPrefix:       Config.VCH.AppPrefix,
		TemplateVersion: Config.VCH.TemplateVersion,
		StageDir:        stageDir,
	})

	var address = fmt.Sprintf("%s:%d", Config.TaskService.Host, Config.TaskService.Port)
	listener, err := net.Listen("tcp", address)
	mbp.Must(err, "binding service listener")

	var server = grpc.NewServer(
		grpc.MaxRecvMsgSize(pt.MaxMessageSize),
		grpc.MaxSendMsgSize(pt.MaxMessageSize),
		grpc.NumStreamWorkers(uint32(Config.TaskService.PoolSize)),
		// Instrument server for gRPC metric collection.
		grpc.UnaryInterceptor(grpc_prometheus.UnaryServerInterceptor),
		grpc.StreamInterceptor(grpc_prometheus.StreamServerInterceptor),
	)
	gateway.RegisterAPIs(server, api)
	grpc_prometheus.Register(server)

	var tasks = task.NewGroup(context.Background())
	var signalCh = make(chan os.Signal, 1)

	tasks.Queue("gateway.Serve", func() error {
		if err := server.Serve(listener); err != grpc.ErrServerStopped {
			return err
		}
		return nil
	})

	// Install signal handler & start gateway tasks.
	signal.Notify(signalCh, syscall.SIGTERM, syscall.SIGINT)

	tasks.Queue("watch signalCh", func() error {
		select {
		case sig := <-signalCh:
			log.WithField("signal", sig).Info("caught signal")

			tasks.Cancel()
			server.GracefulStop()
			return nil

		case <-tasks.Context().Done():
			return nil
		}
	})

	log.WithField("endpoint", listener.Addr()).Info("starting stoilo gateway")
	tasks.GoRun()

	// Block until all tasks complete. Assert none returned an error.
	mbp.Must(tasks.Wait(), "gateway task failed")
	log.Info("goodbye")

	return nil
}

func main() {
	var parser = flags.NewParser(Config, flags.Default)

	_, _ = parser.AddCommand("serve", "Serve as stoilo gateway", `
Serve the stoilo task gateway with the provided configuration, until
signaled to exit (via SIGTERM).
`, &cmdServe{})

	mbp.AddPrintConfigCmd(parser, iniFilename)
	mbp.MustParseConfig(parser, iniFilename)
}
