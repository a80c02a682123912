package program

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sobadon/radiarc/internal/errutil"
)

// NG フラグはこの値のとき「タイムフリー不可」を意味する
const ngBlocked = 2

// どの NG フラグを見てタイムフリー不可と判断するか
// radiko 側の正確な意味が確認できていないので設定で変えられるようにしておく
type RestrictionPolicy struct {
	TsIn      bool
	TsOut     bool
	TsPlusIn  bool
	TsPlusOut bool
}

func DefaultRestrictionPolicy() RestrictionPolicy {
	return RestrictionPolicy{TsIn: true, TsOut: true}
}

// "ts_in,ts_out" のようなカンマ区切り文字列からポリシーをつくる
func ParseRestrictionPolicy(s string) (RestrictionPolicy, error) {
	var policy RestrictionPolicy
	for _, flag := range strings.Split(s, ",") {
		switch strings.TrimSpace(flag) {
		case "ts_in":
			policy.TsIn = true
		case "ts_out":
			policy.TsOut = true
		case "tsplus_in":
			policy.TsPlusIn = true
		case "tsplus_out":
			policy.TsPlusOut = true
		case "":
		default:
			return RestrictionPolicy{}, errors.Wrapf(errutil.ErrInternal, "unknown restriction flag %q", flag)
		}
	}
	return policy, nil
}

func (policy RestrictionPolicy) Blocked(pgram Program) bool {
	if policy.TsIn && pgram.TsInNG == ngBlocked {
		return true
	}
	if policy.TsOut && pgram.TsOutNG == ngBlocked {
		return true
	}
	if policy.TsPlusIn && pgram.TsPlusInNG == ngBlocked {
		return true
	}
	if policy.TsPlusOut && pgram.TsPlusOutNG == ngBlocked {
		return true
	}
	return false
}
