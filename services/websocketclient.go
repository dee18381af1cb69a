package services

import (
	"context"
	"net/http"
	"time"

	"nhooyr.io/websocket"
)

type websocketCredentials interface {
	GetWebsocketURL() string
	GetWebsocketOrigin() string
}

type websocketClientLogger interface {
	Debugf(format string, args ...interface{})
	Printf(format string, args ...interface{})
}

type WebsocketClient struct {
	connection *websocket.Conn
	context    context.Context
	logger     websocketClientLogger
}

// Create connected websocket client
func NewWebsocketClient(ctx context.Context, websocketCredentials websocketCredentials, websocketClientLogger websocketClientLogger) *WebsocketClient {
	var websocketClient = WebsocketClient{logger: websocketClientLogger}
	websocketClient.context = ctx

	options := websocket.DialOptions{
		HTTPHeader: http.Header{"Origin": []string{websocketCredentials.GetWebsocketOrigin()}},
	}

	var err error

	for {
		websocketClient.connection, _, err = websocket.Dial(websocketClient.context, websocketCredentials.GetWebsocketURL(), &options)
		if err != nil {
			time.Sleep(1 * time.Second)
			websocketClient.logger.Debugf("Attempting to establish a websocket connection...")
			continue
		}
		break
	}
	websocketClient.logger.Debugf("Websocket connection established")

	// Ping every 30 sec
	go func() {
		for {
			select {
			case <-websocketClient.context.Done():
				return
			default:
				time.Sleep(time.Second * 30)
				websocketClient.connection.Ping(websocketClient.context)
			}
		}
	}()

	return &websocketClient
}

func (websocketClient *WebsocketClient) Send(text string) error {
	return websocketClient.connection.Write(websocketClient.context, websocket.MessageText, []byte(text))
}

// Listen delivers every inbound text frame to the handler, one frame
// at a time in arrival order. A read failure ends the loop and is
// reported through closed; a context cancellation ends it silently.
func (websocketClient *WebsocketClient) Listen(handler func(raw string), closed func(err error)) {
	go func() {
		for {
			select {
			case <-websocketClient.context.Done():
				return
			default:
				_, bytes, err := websocketClient.connection.Read(websocketClient.context)
				if err != nil {
					websocketClient.logger.Printf("Websocket connection closed: %v", err)
					closed(err)
					return
				}
				handler(string(bytes))
			}
		}
	}()
}
