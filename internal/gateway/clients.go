package gateway

import (
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	paymentv1 "github.com/easpayments/easpayments-go/gen/payment/v1"
)

// Clients bundles the gateway's RPC stubs. Connections are lazy; gRPC brings
// the transport up on first use and re-establishes it as needed.
type Clients struct {
	Ledger paymentv1.LedgerServiceClient
	Notify paymentv1.NotificationServiceClient

	ledgerConn *grpc.ClientConn
	notifyConn *grpc.ClientConn
}

func DialClients(ledgerTarget, notifyTarget string) (*Clients, error) {
	ledgerConn, err := grpc.NewClient(ledgerTarget, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial ledger %s: %w", ledgerTarget, err)
	}
	notifyConn, err := grpc.NewClient(notifyTarget, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		_ = ledgerConn.Close()
		return nil, fmt.Errorf("dial notifications %s: %w", notifyTarget, err)
	}
	return &Clients{
		Ledger:     paymentv1.NewLedgerServiceClient(ledgerConn),
		Notify:     paymentv1.NewNotificationServiceClient(notifyConn),
		ledgerConn: ledgerConn,
		notifyConn: notifyConn,
	}, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	_ = c.ledgerConn.Close()
	_ = c.notifyConn.Close()
}
