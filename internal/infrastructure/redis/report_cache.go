// Package redis implementa la caché de reportes de ventas sobre Redis.
//
// Las claves llevan un número de versión ("reportes:v{n}:{filtros}"). Invalidate
// incrementa la versión, así todas las entradas anteriores quedan huérfanas y
// expiran por TTL sin necesidad de recorrer el keyspace.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/reporting"
)

const (
	keyPrefix  = "reportes"
	versionKey = keyPrefix + ":version"
)

var _ reporting.ReportCache = (*ReportCache)(nil)

// ReportCache implementa reporting.ReportCache.
type ReportCache struct {
	client goredis.Cmdable
	ttl    time.Duration
}

// NewReportCache crea la caché. ttl <= 0 usa 5 minutos.
func NewReportCache(client goredis.Cmdable, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ReportCache{client: client, ttl: ttl}
}

// GetSalesReport devuelve la entrada de key y la versión vigente al leerla.
// Sin entrada devuelve (nil, version, false, nil).
func (c *ReportCache) GetSalesReport(ctx context.Context, key string) (*dto.SalesReportDTO, int64, bool, error) {
	v, err := c.version(ctx)
	if err != nil {
		return nil, 0, false, err
	}
	raw, err := c.client.Get(ctx, entryKey(v, key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, v, false, nil
	}
	if err != nil {
		return nil, v, false, fmt.Errorf("redis get reporte: %w", err)
	}
	var out dto.SalesReportDTO
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, v, false, fmt.Errorf("redis decodificar reporte: %w", err)
	}
	return &out, v, true, nil
}

// SetSalesReport guarda el reporte bajo version, la que devolvió GetSalesReport antes de calcularlo.
// Si entretanto hubo un Invalidate la entrada queda en una versión vieja y nunca se sirve.
func (c *ReportCache) SetSalesReport(ctx context.Context, version int64, key string, report *dto.SalesReportDTO) error {
	if report == nil {
		return nil
	}
	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("redis codificar reporte: %w", err)
	}
	if err := c.client.Set(ctx, entryKey(version, key), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set reporte: %w", err)
	}
	return nil
}

// Invalidate descarta todos los reportes cacheados.
func (c *ReportCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		return fmt.Errorf("redis invalidar reportes: %w", err)
	}
	return nil
}

func (c *ReportCache) version(ctx context.Context) (int64, error) {
	s, err := c.client.Get(ctx, versionKey).Result()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis versión de reportes: %w", err)
	}
	return parseVersion(s), nil
}

func parseVersion(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func entryKey(version int64, key string) string {
	if key == "" {
		key = "todos"
	}
	return fmt.Sprintf("%s:v%d:%s", keyPrefix, version, key)
}
