package ledger

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/Rexesezka/ServiceDesk1/internal/domain"
)

// redisLedger stores load records in Redis, one counter and one ticket
// set per staff member. Redis executes each script atomically per key,
// which gives the per-staff linearizability the ledger contract requires
// without any cross-staff coordination.
type redisLedger struct {
	client *redis.Client
}

// incrScript bumps the counter and records the ticket id in one step.
var incrScript = redis.NewScript(`
redis.call('INCR', KEYS[1])
redis.call('SADD', KEYS[2], ARGV[1])
return redis.call('GET', KEYS[1])
`)

// decrScript clamps the counter at zero so repeated terminal transitions
// can never drive a workload negative.
var decrScript = redis.NewScript(`
local count = tonumber(redis.call('GET', KEYS[1]) or '0')
if count > 0 then
  count = count - 1
end
redis.call('SET', KEYS[1], count)
redis.call('SREM', KEYS[2], ARGV[1])
return count
`)

// NewRedis creates a ledger backed by the given Redis client.
func NewRedis(client *redis.Client) Ledger {
	return &redisLedger{client: client}
}

func countKey(staffID int64) string {
	return fmt.Sprintf("load:%d:count", staffID)
}

func ticketsKey(staffID int64) string {
	return fmt.Sprintf("load:%d:tickets", staffID)
}

func (l *redisLedger) Increment(ctx context.Context, staffID, ticketID int64) error {
	keys := []string{countKey(staffID), ticketsKey(staffID)}
	return incrScript.Run(ctx, l.client, keys, ticketID).Err()
}

func (l *redisLedger) Decrement(ctx context.Context, staffID, ticketID int64) error {
	keys := []string{countKey(staffID), ticketsKey(staffID)}
	return decrScript.Run(ctx, l.client, keys, ticketID).Err()
}

func (l *redisLedger) CurrentLoad(ctx context.Context, staffID int64) (int, error) {
	val, err := l.client.Get(ctx, countKey(staffID)).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(val)
}

func (l *redisLedger) Loads(ctx context.Context, staffIDs []int64) (map[int64]int, error) {
	loads := make(map[int64]int, len(staffIDs))
	if len(staffIDs) == 0 {
		return loads, nil
	}
	keys := make([]string, len(staffIDs))
	for i, id := range staffIDs {
		keys[i] = countKey(id)
	}
	values, err := l.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for i, raw := range values {
		count := 0
		if s, ok := raw.(string); ok {
			parsed, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("corrupt load counter for staff %d: %w", staffIDs[i], err)
			}
			count = parsed
		}
		loads[staffIDs[i]] = count
	}
	return loads, nil
}

func (l *redisLedger) Record(ctx context.Context, staffID int64) (domain.Load, error) {
	load := domain.Load{StaffID: staffID}
	count, err := l.CurrentLoad(ctx, staffID)
	if err != nil {
		return load, err
	}
	load.OpenCount = count

	members, err := l.client.SMembers(ctx, ticketsKey(staffID)).Result()
	if err != nil && err != redis.Nil {
		return load, err
	}
	load.OpenTickets = make([]int64, 0, len(members))
	for _, member := range members {
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			continue
		}
		load.OpenTickets = append(load.OpenTickets, id)
	}
	sort.Slice(load.OpenTickets, func(i, j int) bool { return load.OpenTickets[i] < load.OpenTickets[j] })
	return load, nil
}
