// Command client is a small terminal UI for exercising the fabric: it
// authenticates with a bearer token, opens the live chat stream, and
// accepts a handful of line commands for the control-plane RPCs.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/relaywire/chat/api/chatpb"
	"github.com/relaywire/chat/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}
	cfg := config.Load()

	token := os.Getenv("CHAT_TOKEN")
	if token == "" {
		log.Fatal("client: CHAT_TOKEN is not set")
	}

	conn, err := grpc.Dial(cfg.ServerAddress, grpc.WithInsecure())
	if err != nil {
		log.Fatalf("client: dial %s: %v", cfg.ServerAddress, err)
	}
	defer conn.Close()

	rpc := chatpb.NewChatClient(conn)
	ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", token)

	stream, err := rpc.Chat(ctx)
	if err != nil {
		log.Fatalf("client: open chat stream: %v", err)
	}

	go recvLoop(stream)

	fmt.Println("connected. commands: /send <chat_id> <text>, /chats, /create <name>, /invite <user_id> <chat_id>, /invites, /accept <invite_id>, /decline <invite_id>, /quit")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !handleCommand(ctx, rpc, stream, line) {
			break
		}
	}
}

func recvLoop(stream chatpb.Chat_ChatClient) {
	for {
		msg, err := stream.Recv()
		if err != nil {
			log.Printf("client: stream closed: %v", err)
			return
		}
		fmt.Printf("[chat %d] %s: %s\n", msg.GetChatId(), msg.GetUserId(), msg.GetText())
	}
}

func handleCommand(ctx context.Context, rpc chatpb.ChatClient, stream chatpb.Chat_ChatClient, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/quit":
		return false

	case "/send":
		if len(fields) < 3 {
			fmt.Println("usage: /send <chat_id> <text>")
			return true
		}
		chatID, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Println("invalid chat_id")
			return true
		}
		text := strings.Join(fields[2:], " ")
		if err := stream.Send(&chatpb.SendMessage{ChatId: int32(chatID), Text: text}); err != nil {
			log.Printf("client: send failed: %v", err)
		}

	case "/chats":
		chats, err := rpc.GetUserChats(ctx, &chatpb.GetUserChatsRequest{})
		if err != nil {
			log.Printf("client: get_user_chats failed: %v", err)
			return true
		}
		for _, c := range chats.GetChats() {
			fmt.Printf("  %d: %s\n", c.GetId(), c.GetName())
		}

	case "/create":
		if len(fields) < 2 {
			fmt.Println("usage: /create <name>")
			return true
		}
		resp, err := rpc.CreateChat(ctx, &chatpb.CreateChatRequest{Name: strings.Join(fields[1:], " ")})
		if err != nil {
			log.Printf("client: create_chat failed: %v", err)
			return true
		}
		fmt.Printf("created chat %d: %s\n", resp.GetChat().GetId(), resp.GetChat().GetName())

	case "/invite":
		if len(fields) < 3 {
			fmt.Println("usage: /invite <user_id> <chat_id>")
			return true
		}
		chatID, err := strconv.Atoi(fields[2])
		if err != nil {
			fmt.Println("invalid chat_id")
			return true
		}
		if _, err := rpc.SendInvite(ctx, &chatpb.SendInviteRequest{UserId: fields[1], ChatId: int32(chatID)}); err != nil {
			log.Printf("client: send_invite failed: %v", err)
		}

	case "/invites":
		invs, err := rpc.GetInvites(ctx, &chatpb.GetInvitesRequest{})
		if err != nil {
			log.Printf("client: get_invites failed: %v", err)
			return true
		}
		for _, inv := range invs.GetInvites() {
			fmt.Printf("  %d: from %s for chat %d\n", inv.GetId(), inv.GetInviterUserId(), inv.GetChatId())
		}

	case "/accept", "/decline":
		if len(fields) < 2 {
			fmt.Printf("usage: %s <invite_id>\n", fields[0])
			return true
		}
		inviteID, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Println("invalid invite_id")
			return true
		}
		if _, err := rpc.AnswerInvite(ctx, &chatpb.AnswerInviteRequest{
			InviteId: int32(inviteID),
			Accept:   fields[0] == "/accept",
		}); err != nil {
			log.Printf("client: answer_invite failed: %v", err)
		}

	default:
		fmt.Println("unknown command")
	}
	return true
}
