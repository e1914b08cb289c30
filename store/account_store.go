package store

import (
	"fmt"
	"strings"
	"sync"

	"github.com/golang/protobuf/proto"

	"omni/db"
	pb "omni/proto"
	"omni/types"
	"omni/utils"
)

type AccountStore interface {
	Store(account *types.Account) error
	StoreBatch(accounts []*types.Account) error
	GetByAddr(addr string) (*types.Account, error)
	GetBatch(addrs []string) (map[string]*types.Account, error)
	ExistsByAddr(addr string) (bool, error)
	GetAll() ([]*types.Account, error)
	MustClose()
}

type GenericAccountStore struct {
	mu         sync.RWMutex
	dbProvider db.DatabaseProvider
}

func NewGenericAccountStore(dbProvider db.DatabaseProvider) (*GenericAccountStore, error) {
	if dbProvider == nil {
		return nil, fmt.Errorf("provider cannot be nil")
	}

	return &GenericAccountStore{
		dbProvider: dbProvider,
	}, nil
}

func (as *GenericAccountStore) Store(account *types.Account) error {
	as.mu.Lock()
	defer as.mu.Unlock()

	accountData, err := marshalAccount(account)
	if err != nil {
		return err
	}

	err = as.dbProvider.Put(as.getDbKey(account.Address), accountData)
	if err != nil {
		return fmt.Errorf("failed to write account to db: %w", err)
	}

	return nil
}

func (as *GenericAccountStore) StoreBatch(accounts []*types.Account) error {
	as.mu.Lock()
	defer as.mu.Unlock()

	batch := as.dbProvider.Batch()
	defer batch.Close()
	for _, account := range accounts {
		accountData, err := marshalAccount(account)
		if err != nil {
			return err
		}
		batch.Put(as.getDbKey(account.Address), accountData)
	}

	err := batch.Write()
	if err != nil {
		return fmt.Errorf("failed to write batch of accounts to database: %w", err)
	}

	return nil
}

// GetByAddr returns account instance from db, returns both nil if not exist
func (as *GenericAccountStore) GetByAddr(addr string) (*types.Account, error) {
	as.mu.RLock()
	defer as.mu.RUnlock()

	data, err := as.dbProvider.Get(as.getDbKey(addr))
	if err != nil {
		return nil, fmt.Errorf("could not get account %s from db: %w", addr, err)
	}

	// Account doesn't exist
	if data == nil {
		return nil, nil
	}

	return unmarshalAccount(addr, data)
}

// GetBatch returns accounts by addresses; missing addresses are absent from the result
func (as *GenericAccountStore) GetBatch(addrs []string) (map[string]*types.Account, error) {
	as.mu.RLock()
	defer as.mu.RUnlock()

	keys := make([][]byte, len(addrs))
	for i, addr := range addrs {
		keys[i] = as.getDbKey(addr)
	}

	raw, err := as.dbProvider.GetBatch(keys)
	if err != nil {
		return nil, fmt.Errorf("could not get accounts from db: %w", err)
	}

	result := make(map[string]*types.Account, len(raw))
	for key, data := range raw {
		addr := strings.TrimPrefix(key, PrefixAccount)
		acc, err := unmarshalAccount(addr, data)
		if err != nil {
			return nil, err
		}
		result[addr] = acc
	}
	return result, nil
}

func (as *GenericAccountStore) ExistsByAddr(addr string) (bool, error) {
	as.mu.RLock()
	defer as.mu.RUnlock()

	return as.dbProvider.Has(as.getDbKey(addr))
}

// GetAll returns every stored account; requires an iterable provider
func (as *GenericAccountStore) GetAll() ([]*types.Account, error) {
	as.mu.RLock()
	defer as.mu.RUnlock()

	iterable, ok := as.dbProvider.(db.IterableProvider)
	if !ok {
		return nil, fmt.Errorf("provider does not support iteration")
	}

	accounts := make([]*types.Account, 0)
	var iterErr error
	err := iterable.IteratePrefix([]byte(PrefixAccount), func(key, value []byte) bool {
		addr := strings.TrimPrefix(string(key), PrefixAccount)
		acc, err := unmarshalAccount(addr, value)
		if err != nil {
			iterErr = err
			return false
		}
		accounts = append(accounts, acc)
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	if iterErr != nil {
		return nil, iterErr
	}
	return accounts, nil
}

func (as *GenericAccountStore) MustClose() {
	if err := as.dbProvider.Close(); err != nil {
		panic(fmt.Sprintf("failed to close account store: %v", err))
	}
}

func (as *GenericAccountStore) getDbKey(addr string) []byte {
	return []byte(PrefixAccount + addr)
}

// marshalAccount encodes as protobuf (compact), balance as a decimal string
func marshalAccount(account *types.Account) ([]byte, error) {
	pbAcc := &pb.AccountRecord{
		Address: account.Address,
		Balance: utils.Uint256ToString(account.Balance),
	}
	accountData, err := proto.Marshal(pbAcc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal account (proto): %w", err)
	}
	return accountData, nil
}

func unmarshalAccount(addr string, data []byte) (*types.Account, error) {
	var pbAcc pb.AccountRecord
	if err := proto.Unmarshal(data, &pbAcc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account %s: %w", addr, err)
	}
	return &types.Account{
		Address: pbAcc.Address,
		Balance: utils.Uint256FromString(pbAcc.Balance),
	}, nil
}
