package console

import (
	"net/http"
	"strings"
)

// launcherHTML is the standalone launcher snapshot: a single-file portal
// page pointing back at the console. %ADDR% is replaced at download
// time with the console's own URL.
const launcherHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>SHROVATE // SYSTEM LAUNCHER</title>
    <style>
        @import url('https://fonts.googleapis.com/css2?family=Orbitron:wght@500;900&display=swap');
        body {
            background: #050505;
            color: #00f3ff;
            display: flex;
            flex-direction: column;
            align-items: center;
            justify-content: center;
            height: 100vh;
            margin: 0;
            font-family: 'Orbitron', monospace;
            overflow: hidden;
        }
        .container {
            text-align: center;
            border: 1px solid rgba(0, 243, 255, 0.3);
            padding: 40px;
            background: rgba(0, 243, 255, 0.05);
            box-shadow: 0 0 30px rgba(0, 243, 255, 0.1);
            border-radius: 5px;
        }
        h1 { font-size: 2.5rem; margin-bottom: 10px; text-shadow: 0 0 10px #00f3ff; }
        p { color: #bc13fe; letter-spacing: 2px; margin-bottom: 30px; }
        .btn {
            display: inline-block;
            padding: 15px 40px;
            border: 2px solid #00f3ff;
            color: #00f3ff;
            background: transparent;
            text-decoration: none;
            font-size: 18px;
            font-weight: bold;
            cursor: pointer;
            transition: all 0.3s ease;
            text-transform: uppercase;
            letter-spacing: 1px;
        }
        .btn:hover {
            background: #00f3ff;
            color: #050505;
            box-shadow: 0 0 30px #00f3ff;
        }
        .footer {
            margin-top: 20px;
            font-size: 10px;
            opacity: 0.5;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>SHROVATE</h1>
        <p>SECURE NEURAL LINK // ACCESS PORTAL</p>
        <a href="%ADDR%" class="btn" target="_blank">INITIALIZE SYSTEM</a>
        <div class="footer">SYSTEM VERSION 2.5 // BUILD 9442</div>
    </div>
</body>
</html>
`

// handleLauncher materializes the standalone HTML launcher snapshot.
func (s *Server) handleLauncher(w http.ResponseWriter, r *http.Request) {
	addr := "http://" + r.Host + "/"
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="SHROVATE_LAUNCHER.html"`)
	w.Write([]byte(strings.ReplaceAll(launcherHTML, "%ADDR%", addr)))
}
