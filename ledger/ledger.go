package ledger

import (
	"fmt"
	"sync"

	"github.com/holiman/uint256"

	"omni/errors"
	"omni/events"
	"omni/logx"
	"omni/monitoring"
	"omni/store"
	"omni/types"
	"omni/utils"
)

// Ledger owns the address→balance mapping and the local total-supply
// counter of one domain. It has no notion of roles, caps or pauses;
// callers decide which policy applies before touching it. Every mutation
// is compute-then-commit so a failed operation leaves no partial state.
type Ledger struct {
	mu           sync.RWMutex
	accountStore store.AccountStore
	stateStore   store.StateStore
	eventRouter  *events.EventRouter
}

func NewLedger(accountStore store.AccountStore, stateStore store.StateStore, eventRouter *events.EventRouter) *Ledger {
	return &Ledger{
		accountStore: accountStore,
		stateStore:   stateStore,
		eventRouter:  eventRouter,
	}
}

// Balance returns current balance for addr. Unknown addresses read as zero.
func (l *Ledger) Balance(addr string) (*uint256.Int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	acc, err := l.accountStore.GetByAddr(addr)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return uint256.NewInt(0), nil
	}
	return acc.Balance.Clone(), nil
}

// TotalSupply returns the local circulating supply of this domain
func (l *Ledger) TotalSupply() (*uint256.Int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.stateStore.GetTotalSupply()
}

// Credit increases addr's balance and the total supply by amount.
// No cap is consulted here; the supply governor and the cross-chain
// receive path disagree on whether a cap applies and decide themselves.
func (l *Ledger) Credit(addr string, amount *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.creditWithoutLocking(addr, amount)
}

func (l *Ledger) creditWithoutLocking(addr string, amount *uint256.Int) error {
	acc, err := l.loadOrZero(addr)
	if err != nil {
		return err
	}
	supply, err := l.stateStore.GetTotalSupply()
	if err != nil {
		return err
	}

	newBalance, overflow := new(uint256.Int).AddOverflow(acc.Balance, amount)
	if overflow {
		monitoring.RecordRejectedOp(monitoring.OpOverflow)
		return errors.ErrOverflow()
	}
	newSupply, overflow := new(uint256.Int).AddOverflow(supply, amount)
	if overflow {
		monitoring.RecordRejectedOp(monitoring.OpOverflow)
		return errors.ErrOverflow()
	}

	acc.Balance = newBalance
	if err := l.accountStore.Store(acc); err != nil {
		return fmt.Errorf("failed to store account %s: %w", addr, err)
	}
	if err := l.stateStore.SetTotalSupply(newSupply); err != nil {
		return fmt.Errorf("failed to store total supply: %w", err)
	}
	monitoring.SetCirculatingSupply(newSupply)
	return nil
}

// Debit decreases addr's balance and the total supply by amount
func (l *Ledger) Debit(addr string, amount *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debitWithoutLocking(addr, amount)
}

func (l *Ledger) debitWithoutLocking(addr string, amount *uint256.Int) error {
	acc, err := l.loadOrZero(addr)
	if err != nil {
		return err
	}
	if acc.Balance.Cmp(amount) < 0 {
		monitoring.RecordRejectedOp(monitoring.OpInsufficientBalance)
		return errors.ErrInsufficientBalance()
	}
	supply, err := l.stateStore.GetTotalSupply()
	if err != nil {
		return err
	}
	// balance ≤ supply always holds, so supply cannot underflow here
	newBalance := new(uint256.Int).Sub(acc.Balance, amount)
	newSupply := new(uint256.Int).Sub(supply, amount)

	acc.Balance = newBalance
	if err := l.accountStore.Store(acc); err != nil {
		return fmt.Errorf("failed to store account %s: %w", addr, err)
	}
	if err := l.stateStore.SetTotalSupply(newSupply); err != nil {
		return fmt.Errorf("failed to store total supply: %w", err)
	}
	monitoring.SetCirculatingSupply(newSupply)
	return nil
}

// Transfer atomically moves amount from one address to another. Total
// supply is unchanged. A zero amount is legal and only emits the event.
func (l *Ledger) Transfer(from, to string, amount *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount.IsZero() {
		logx.Debug("LEDGER", fmt.Sprintf("Zero-amount transfer %s -> %s", from, to))
		l.publish(events.NewTransferred(from, to, amount))
		return nil
	}

	sender, err := l.loadOrZero(from)
	if err != nil {
		return err
	}
	if sender.Balance.Cmp(amount) < 0 {
		monitoring.RecordRejectedOp(monitoring.OpInsufficientBalance)
		return errors.ErrInsufficientBalance()
	}

	if from == to {
		// self-transfer moves nothing but is still observable
		l.publish(events.NewTransferred(from, to, amount))
		monitoring.IncreaseTransferCount()
		return nil
	}

	recipient, err := l.loadOrZero(to)
	if err != nil {
		return err
	}
	newRecipientBalance, overflow := new(uint256.Int).AddOverflow(recipient.Balance, amount)
	if overflow {
		monitoring.RecordRejectedOp(monitoring.OpOverflow)
		return errors.ErrOverflow()
	}

	sender.Balance = new(uint256.Int).Sub(sender.Balance, amount)
	recipient.Balance = newRecipientBalance
	if err := l.accountStore.StoreBatch([]*types.Account{sender, recipient}); err != nil {
		return fmt.Errorf("failed to store transfer %s -> %s: %w", from, to, err)
	}

	logx.Info("LEDGER", fmt.Sprintf("Transferred %s from %s to %s", amount.Dec(), utils.ShortenLog(from), utils.ShortenLog(to)))
	l.publish(events.NewTransferred(from, to, amount))
	monitoring.IncreaseTransferCount()
	return nil
}

// SumBalances walks every account and returns the sum of balances.
// Used by the audit surface to check totalSupply == Σ balances.
func (l *Ledger) SumBalances() (*uint256.Int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	accounts, err := l.accountStore.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get all accounts: %w", err)
	}
	sum := uint256.NewInt(0)
	for _, acc := range accounts {
		var overflow bool
		sum, overflow = new(uint256.Int).AddOverflow(sum, acc.Balance)
		if overflow {
			return nil, errors.ErrOverflow()
		}
	}
	return sum, nil
}

// GetAllAccounts returns every account known to this domain
func (l *Ledger) GetAllAccounts() ([]*types.Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.accountStore.GetAll()
}

func (l *Ledger) loadOrZero(addr string) (*types.Account, error) {
	acc, err := l.accountStore.GetByAddr(addr)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		acc = &types.Account{Address: addr, Balance: uint256.NewInt(0)}
	}
	return acc, nil
}

func (l *Ledger) publish(event events.SupplyEvent) {
	if l.eventRouter != nil {
		l.eventRouter.PublishSupplyEvent(event)
	}
}
