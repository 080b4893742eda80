package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"github.com/huddleapp/huddle/pkg/config"
	"github.com/huddleapp/huddle/pkg/hdb"
	"github.com/huddleapp/huddle/pkg/hdb/stor"
	"github.com/huddleapp/huddle/pkg/hlog"
	"github.com/huddleapp/huddle/pkg/realtime"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "huddled",
	Short: "Run the huddle collaboration server",
	Long: `huddled is the backend for small-team collaboration: accounts, team
membership, a shared kanban board and per-team chat. State-changing requests
are broadcast to the team's connected clients over a websocket channel.

Storage is durable when the configured database is reachable at startup and
falls back to transient in-memory tables otherwise. The choice is made once
and holds for the life of the process.`,
	Run: func(cmd *cobra.Command, args []string) {
		if dotenvPath == "" {
			dotenvPath = os.Getenv("HUDDLE_DOTENV_PATH")
		}

		if dotenvPath != "" {
			if err := config.LoadFromPath(dotenvPath); err != nil {
				log.Fatalf("Failed loading configuration file %s: %s", dotenvPath, err)
			}
		}

		hlog.Setup(config.GetKeyWithDefault("HUDDLE_LOG_LEVEL", "info"))

		var stors *stor.Stors
		storageMode := "durable"

		db, err := hdb.ConnectToDB()
		if err != nil {
			log.Warnf("Database unreachable (%s), using transient in-memory storage", err)
			stors = stor.NewInMemoryStors()
			storageMode = "transient"
		} else {
			log.Infof("Connected to database, using durable storage")
			stors = stor.NewGormStors(db)
		}

		hub := realtime.NewHub()
		rt := realtime.NewServer(hub, stors.MessageStor)

		e := echo.New()
		e.HideBanner = true
		e.HidePort = true
		e.Use(middleware.Recover())
		e.Use(middleware.CORS())

		setupRoutes(e, RouteOpts{
			stors:       stors,
			hub:         hub,
			rt:          rt,
			storageMode: storageMode,
		})

		if port == "" {
			port = config.GetKeyWithDefault("HUDDLE_PORT", "8000")
		}

		log.Infof("Server starting on port %s", port)
		if err := e.Start(":" + port); err != nil {
			log.Fatalf("Unable to start server: %s", err)
		}
	},
}

var (
	port       string
	dotenvPath string
)

func init() {
	rootCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (default HUDDLE_PORT or 8000)")
	rootCmd.Flags().StringVar(&dotenvPath, "dotenv", "", "Path to a dotenv configuration file")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
