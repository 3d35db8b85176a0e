// Command httpclient sends a single HTTP/1.1 request and prints the
// response, as a thin CLI wrapper over internal/client.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shapestone/httpcodec/internal/client"
	"github.com/shapestone/httpcodec/internal/message"
)

func main() {
	var method string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "httpclient <addr> <path>",
		Short: "Send one HTTP/1.1 request and print the response",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, path := args[0], args[1]

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			c := client.New()
			status, headers, body, err := c.Do(ctx, addr,
				message.RequestLine{Method: method, RequestTarget: path, Version: message.HTTPVersion{Major: 1, Minor: 1}},
				nil, message.NoneBody())
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", status.String())
			for _, h := range headers {
				fmt.Printf("%s: %s\n", h.Name, h.Value)
			}
			fmt.Println()

			switch body.Kind {
			case message.BodySlice:
				os.Stdout.Write(body.Slice)
			case message.BodyReader:
				io.Copy(os.Stdout, body.Reader)
			case message.BodyChunked:
				os.Stdout.Write(body.Chunked.Bytes())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", "GET", "HTTP method")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
