package main

import (
	"flag"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/songshan0321/CPPND/pkg/config"
	"github.com/songshan0321/CPPND/pkg/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type serverMessage struct {
	Type  string            `json:"type"`
	Board *game.BoardConfig `json:"board,omitempty"`
	State *game.State       `json:"state,omitempty"`
}

type clientMessage struct {
	Action string `json:"action"`
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	r := gin.Default()
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
	})
	r.GET("/ws", handleWebSocket)

	log.Printf("snake web server listening on %s", *addr)
	log.Fatal(r.Run(*addr))
}

// handleWebSocket runs one game session per connection: a simulation
// goroutine plus a state stream at render cadence, with client actions fed
// into the session's controller.
func handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	defer conn.Close()
	log.Println("new session from", c.Request.RemoteAddr)

	g, err := game.NewGame(config.GridWidth, config.GridHeight)
	if err != nil {
		log.Println("new game:", err)
		return
	}
	defer g.Stop()

	ctrl := game.NewManualController()

	var writeMu sync.Mutex
	writeJSON := func(v interface{}) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return conn.WriteJSON(v)
	}

	board := g.Board()
	if err := writeJSON(serverMessage{Type: "board", Board: &board}); err != nil {
		return
	}

	simDone := make(chan struct{})
	go func() {
		g.Run(ctrl)
		close(simDone)
	}()

	go func() {
		for {
			var msg clientMessage
			if err := conn.ReadJSON(&msg); err != nil {
				ctrl.Quit()
				return
			}
			switch msg.Action {
			case "up":
				ctrl.SetDirection(game.Up)
			case "down":
				ctrl.SetDirection(game.Down)
			case "left":
				ctrl.SetDirection(game.Left)
			case "right":
				ctrl.SetDirection(game.Right)
			case "quit":
				ctrl.Quit()
			}
		}
	}()

	frames := time.NewTicker(config.RenderInterval)
	defer frames.Stop()

	for {
		select {
		case <-simDone:
			st := g.Snapshot()
			writeJSON(serverMessage{Type: "final", State: &st})
			return
		case <-frames.C:
			st := g.Snapshot()
			if err := writeJSON(serverMessage{Type: "state", State: &st}); err != nil {
				ctrl.Quit()
				return
			}
		}
	}
}

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Snake vs Snake</title>
<style>
  body { background: #1e1e1e; color: #ddd; font-family: monospace; text-align: center; }
  #board { line-height: 1.0; font-size: 16px; display: inline-block; margin-top: 1rem; }
  #status { margin-top: 0.5rem; }
</style>
</head>
<body>
<h2>🐍 Snake vs Snake</h2>
<div id="status">connecting…</div>
<pre id="board"></pre>
<div>arrows / WASD to steer, Q to quit</div>
<script>
let board = { width: 32, height: 32 };
const glyph = (st, x, y) => {
  const at = p => p.x === x && p.y === y;
  if (at(st.player.head)) return st.player.alive ? "🔵" : "💀";
  if (at(st.enemy.head)) return st.enemy.alive ? "🔴" : "💀";
  if (st.player.body.some(at)) return "🟦";
  if (st.enemy.body.some(at)) return "🟥";
  const food = st.foods.find(f => at(f.pos));
  if (food) return food.type === 1 ? "🟢" : food.type === 2 ? "🟡" : "⚪";
  return "　";
};
const draw = st => {
  let out = "";
  for (let y = 0; y < board.height; y++) {
    for (let x = 0; x < board.width; x++) out += glyph(st, x, y);
    out += "\n";
  }
  document.getElementById("board").textContent = out;
  document.getElementById("status").textContent =
    "Your Score: " + st.playerScore + "  |  Enemy Score: " + st.enemyScore +
    (st.over ? "  |  GAME OVER" : "");
};
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
ws.onmessage = ev => {
  const msg = JSON.parse(ev.data);
  if (msg.type === "board") board = msg.board;
  if (msg.state) draw(msg.state);
};
const keys = { ArrowUp: "up", ArrowDown: "down", ArrowLeft: "left", ArrowRight: "right",
  w: "up", s: "down", a: "left", d: "right", q: "quit" };
document.addEventListener("keydown", ev => {
  const action = keys[ev.key];
  if (action && ws.readyState === WebSocket.OPEN) {
    ws.send(JSON.stringify({ action }));
    ev.preventDefault();
  }
});
</script>
</body>
</html>`
