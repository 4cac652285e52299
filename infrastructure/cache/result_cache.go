// Package cache implementa o cache de resultados das consultas
// analíticas: TTL curto, chave derivada do contexto de filtros
// normalizado e deduplicação de consultas idênticas em voo.
package cache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// ResultCache guarda resultados já pós-processados. Uma entrada expirada
// nunca é servida; ela só ocupa memória até a próxima varredura.
type ResultCache struct {
	ttl time.Duration

	mu      sync.RWMutex
	entries map[string]entry

	group singleflight.Group

	// Relógio injetável para testes determinísticos de expiração
	now func() time.Time
}

func NewResultCache(ttl time.Duration) *ResultCache {
	return &ResultCache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// loadResult distingue valor recém-carregado de valor que já estava
// armazenado; chamadas que apenas compartilham um carregamento em voo
// contam como miss
type loadResult struct {
	value     interface{}
	fromStore bool
}

// Do devolve o valor em cache para a chave ou executa loader uma única
// vez, mesmo sob chamadas concorrentes com a mesma chave (as demais
// aguardam e compartilham o resultado). Erros não são armazenados.
// O booleano indica se o valor saiu do armazenamento, não do loader.
func (c *ResultCache) Do(key string, loader func() (interface{}, error)) (interface{}, bool, error) {
	if value, ok := c.get(key); ok {
		return value, true, nil
	}

	result, err, _ := c.group.Do(key, func() (interface{}, error) {
		// Recheca depois de adquirir o vôo: outra goroutine pode ter
		// preenchido a entrada entre o miss e o Do
		if value, ok := c.get(key); ok {
			return loadResult{value: value, fromStore: true}, nil
		}

		value, err := loader()
		if err != nil {
			return nil, err
		}

		c.set(key, value)

		return loadResult{value: value}, nil
	})
	if err != nil {
		return nil, false, err
	}

	loaded := result.(loadResult)

	return loaded.value, loaded.fromStore, nil
}

func (c *ResultCache) get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}

	return e.value, true
}

func (c *ResultCache) set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Sweep remove as entradas expiradas e devolve quantas foram removidas
func (c *ResultCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0

	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}

	return removed
}

// Len devolve o número de entradas armazenadas, expiradas ou não
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
