package main

//go:generate gengo srv vision_service/wakeup
//go:generate gengo srv vision_service/recognition
import (
	"flag"
	"fmt"
	"os"

	"github.com/edwinhayes/rosgo/ros"

	"github.com/edwinhayes/vision_service/msgs/vision_service"
)

// Smoke-test client for a running vision_service node: wakes the detection
// pipeline up and asks who is in front of the camera.
func main() {
	wakeupName := flag.String("wakeup", "/wakeup", "name of the wakeup service")
	recognizeName := flag.String("recognize", "/recognize_face", "name of the recognition service")
	trackID := flag.String("track", "", "track to recognize (empty picks the closest face)")
	sleepOnly := flag.Bool("sleep", false, "disable detection instead of waking it up")
	flag.Parse()

	rosNode, err := ros.NewNode("/vision_client", os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
	defer rosNode.Shutdown()

	wakeupCli := rosNode.NewServiceClient(*wakeupName, vision_service.SrvWakeup)
	defer wakeupCli.Shutdown()

	var wakeup vision_service.Wakeup
	wakeup.Request.Enable = !*sleepOnly
	if err = wakeupCli.Call(&wakeup); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
	fmt.Printf("awake=%v face_nearby=%v\n", wakeup.Response.Awake, wakeup.Response.FaceNearby)

	if *sleepOnly {
		return
	}

	recognizeCli := rosNode.NewServiceClient(*recognizeName, vision_service.SrvRecognition)
	defer recognizeCli.Shutdown()

	var recognize vision_service.Recognition
	recognize.Request.TrackId = *trackID
	if err = recognizeCli.Call(&recognize); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
	fmt.Printf("name=%s confidence=%v\n", recognize.Response.Name, recognize.Response.Confidence)
}
