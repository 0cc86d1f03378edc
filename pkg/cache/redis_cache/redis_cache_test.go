package redis_cache

import (
	"bytes"
	"testing"
	"time"
)

func Test_redisCacheOpts_init(t *testing.T) {
	opts := RedisCacheOpts{}
	if err := opts.Init(); err == nil {
		t.Fatal("nil client accepted")
	}
}

func Test_packRedisData(t *testing.T) {
	now := time.Now().Unix()
	buf := packRedisData(now, []byte("value"))
	defer buf.Release()

	storedTime, v, err := unpackRedisValue(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if storedTime != now || !bytes.Equal(v, []byte("value")) {
		t.Fatalf("got %d, %q", storedTime, v)
	}

	if _, _, err := unpackRedisValue([]byte{1, 2, 3}); err == nil {
		t.Fatal("short value accepted")
	}
}
