package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/shivamstore/storefront/config"
	"github.com/shivamstore/storefront/database"
	"github.com/shivamstore/storefront/logger"
	"github.com/shivamstore/storefront/web"
	"github.com/shivamstore/storefront/web/global"
	"github.com/shivamstore/storefront/web/service"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	global.SetWebServer(server)
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			global.SetWebServer(server)
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			if err := database.CloseDB(); err != nil {
				logger.Warning("close db err:", err)
			}
			logger.CloseLogger()
			return
		}
	}
}

func showSetting() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	userService := service.UserService{}
	admin, err := userService.GetFirstAdmin()
	if err != nil {
		fmt.Println("get admin failed:", err)
		return
	}
	fmt.Println("current panel settings as follows:")
	fmt.Println("admin email:", admin.Email)
	fmt.Println("port:", config.GetPort())
	fmt.Println("upload folder:", config.GetUploadFolder())
}

func updateAdmin(email string, password string) {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	userService := service.UserService{}
	if err := userService.UpdateAdmin(email, password); err != nil {
		fmt.Println("set admin credential failed:", err)
	} else {
		fmt.Println("set admin credential success")
	}
}

func resetAdmin() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	userService := service.UserService{}
	if err := userService.UpdateAdmin(database.DefaultAdminEmail, database.DefaultAdminPassword); err != nil {
		fmt.Println("reset admin credential failed:", err)
		return
	}
	fmt.Println("admin credential reset to:")
	fmt.Println("email:", database.DefaultAdminEmail)
	fmt.Println("password:", database.DefaultAdminPassword)
}

func main() {
	// Absent .env is fine, the environment still applies.
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use: config.GetName(),
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var settingCmd = &cobra.Command{
		Use:   "setting",
		Short: "Manage settings",
	}

	var showCmd = &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		Run: func(cmd *cobra.Command, args []string) {
			showSetting()
		},
	}

	var adminCmd = &cobra.Command{
		Use:   "admin",
		Short: "Update the admin credential",
		Run: func(cmd *cobra.Command, args []string) {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			updateAdmin(email, password)
		},
	}

	adminCmd.Flags().String("email", "", "set admin login email")
	adminCmd.Flags().String("password", "", "set admin login password")

	var resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Restore the default admin credential",
		Run: func(cmd *cobra.Command, args []string) {
			resetAdmin()
		},
	}

	settingCmd.AddCommand(showCmd, adminCmd, resetCmd)
	rootCmd.AddCommand(runCmd, settingCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
