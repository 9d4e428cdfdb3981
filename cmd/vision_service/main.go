package main

//go:generate gengo msg vision_service/vision_object
//go:generate gengo srv vision_service/wakeup
//go:generate gengo srv vision_service/recognition
import (
	"flag"
	"fmt"
	"os"

	modular "github.com/edwinhayes/logrus-modular"
	"github.com/sirupsen/logrus"

	"github.com/edwinhayes/vision_service/node"
)

func newLogger(verbose bool) (*modular.ModuleLogger, error) {
	log := logrus.New()
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	root := modular.NewRootLogger(log)
	return root.RegisterModule("vision_service")
}

func main() {
	configPath := flag.String("config", "", "path to the node configuration file")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}

	cfg, err := node.LoadConfig(*configPath)
	if err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}

	vn, err := node.New(cfg, logger)
	if err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
	defer vn.Shutdown()

	if err := vn.Run(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
