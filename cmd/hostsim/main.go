// hostsim stands in for the mixed-reality host runtime: it connects to
// the wardrobe server's host endpoint, starts a session, plays a user
// clicking through the menu and then leaving, and prints every command
// the server sends back. Useful for exercising a server by hand.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

type command struct {
	Op       string     `json:"op"`
	ID       string     `json:"id"`
	Label    string     `json:"label"`
	Text     string     `json:"text"`
	Asset    string     `json:"asset"`
	Node     string     `json:"node"`
	UserID   string     `json:"user_id"`
	Anchor   string     `json:"anchor"`
	Instance string     `json:"instance"`
	Position [3]float32 `json:"position"`
	Rotation [4]float32 `json:"rotation"`
	Scale    [3]float32 `json:"scale"`
}

func main() {
	addr := flag.String("addr", "ws://localhost:8080/ws/host", "wardrobe host endpoint")
	user := flag.String("user", "sim-user", "simulated user id")
	dwell := flag.Duration("dwell", 2*time.Second, "time between simulated actions")
	flag.Parse()

	conn, _, err := websocket.DefaultDialer.Dial(*addr, nil)
	if err != nil {
		log.Fatalf("dial %s: %v", *addr, err)
	}
	defer conn.Close()
	log.Printf("connected to %s", *addr)

	send := func(msg map[string]string) {
		if err := conn.WriteJSON(msg); err != nil {
			log.Fatalf("send %v: %v", msg, err)
		}
	}

	// Collect the menu the server builds on session start. The title
	// label always arrives after the last entry.
	send(map[string]string{"event": "started"})

	var buttons []command
	for {
		var cmd command
		if err := conn.ReadJSON(&cmd); err != nil {
			log.Fatalf("read menu: %v", err)
		}
		printCommand(cmd)
		if cmd.Op == "create_button" {
			buttons = append(buttons, cmd)
		}
		if cmd.Op == "create_label" {
			break
		}
	}
	if len(buttons) == 0 {
		log.Fatal("server built no menu")
	}

	// Click through every entry, then leave and hang up.
	go func() {
		for _, b := range buttons {
			time.Sleep(*dwell)
			log.Printf(">> %s clicks %q", *user, b.Label)
			send(map[string]string{"event": "button_click", "control": b.ID, "user_id": *user})
		}
		time.Sleep(*dwell)
		log.Printf(">> %s leaves", *user)
		send(map[string]string{"event": "user_left", "user_id": *user})
		time.Sleep(*dwell)
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	}()

	for {
		var cmd command
		if err := conn.ReadJSON(&cmd); err != nil {
			break
		}
		printCommand(cmd)
	}
	log.Println("session replay finished")
}

func printCommand(cmd command) {
	pretty, err := json.Marshal(cmd)
	if err != nil {
		log.Printf("<< %s (unprintable: %v)", cmd.Op, err)
		return
	}
	fmt.Printf("<< %s\n", pretty)
}
