package repoconf

import (
	"fmt"
	"strconv"
	"strings"

	ini "gopkg.in/ini.v1"

	"repoconf/unitconv"
)

// Option names one recognized per-section configuration key. The set is
// closed: every tag is bound to exactly one backend key and one value kind
// in optionTable, and an unknown tag is always a checked error.
type Option int

const (
	// OptID is the section name of the entry. Read-only.
	OptID Option = iota
	OptName
	OptEnabled
	OptBaseURL
	OptMirrorList
	OptMetalink
	OptMediaID
	OptGPGKey
	OptGPGCAKey
	OptExclude
	OptInclude
	OptFastestMirror
	OptProxy
	OptProxyUsername
	OptProxyPassword
	OptUsername
	OptPassword
	OptGPGCheck
	OptRepoGPGCheck
	OptEnableGroups
	OptBandwidth
	OptThrottle
	OptIPResolve
	OptMetadataExpire
	OptCost
	OptPriority
	OptSSLCACert
	OptSSLVerify
	OptSSLClientCert
	OptSSLClientKey
	OptDeltaRepoBaseURL
)

type optionInfo struct {
	key  string
	kind Kind
	def  *Value
}

var defTrue = BoolValue(true)

var optionTable = map[Option]optionInfo{
	OptID:               {key: "id", kind: KindString},
	OptName:             {key: "name", kind: KindString},
	OptEnabled:          {key: "enabled", kind: KindBool, def: &defTrue},
	OptBaseURL:          {key: "baseurl", kind: KindStringList},
	OptMirrorList:       {key: "mirrorlist", kind: KindString},
	OptMetalink:         {key: "metalink", kind: KindString},
	OptMediaID:          {key: "mediaid", kind: KindString},
	OptGPGKey:           {key: "gpgkey", kind: KindStringList},
	OptGPGCAKey:         {key: "gpgcakey", kind: KindStringList},
	OptExclude:          {key: "exclude", kind: KindStringList},
	OptInclude:          {key: "include", kind: KindStringList},
	OptFastestMirror:    {key: "fastestmirror", kind: KindBool},
	OptProxy:            {key: "proxy", kind: KindString},
	OptProxyUsername:    {key: "proxy_username", kind: KindString},
	OptProxyPassword:    {key: "proxy_password", kind: KindString},
	OptUsername:         {key: "username", kind: KindString},
	OptPassword:         {key: "password", kind: KindString},
	OptGPGCheck:         {key: "gpgcheck", kind: KindBool},
	OptRepoGPGCheck:     {key: "repo_gpgcheck", kind: KindBool},
	OptEnableGroups:     {key: "enablegroups", kind: KindBool, def: &defTrue},
	OptBandwidth:        {key: "bandwidth", kind: KindUint64},
	OptThrottle:         {key: "throttle", kind: KindString},
	OptIPResolve:        {key: "ip_resolve", kind: KindIPResolve},
	OptMetadataExpire:   {key: "metadata_expire", kind: KindInt64},
	OptCost:             {key: "cost", kind: KindInt},
	OptPriority:         {key: "priority", kind: KindInt},
	OptSSLCACert:        {key: "sslcacert", kind: KindString},
	OptSSLVerify:        {key: "sslverify", kind: KindBool, def: &defTrue},
	OptSSLClientCert:    {key: "sslclientcert", kind: KindString},
	OptSSLClientKey:     {key: "sslclientkey", kind: KindString},
	OptDeltaRepoBaseURL: {key: "deltarepobaseurl", kind: KindStringList},
}

func (o Option) String() string {
	if info, ok := optionTable[o]; ok {
		return info.key
	}
	return fmt.Sprintf("option(%d)", int(o))
}

// Kind reports the value kind an option holds, or false for an unknown tag.
func (o Option) Kind() (Kind, bool) {
	info, ok := optionTable[o]
	return info.kind, ok
}

func lookupOption(opt Option, want Kind) (optionInfo, error) {
	info, ok := optionTable[opt]
	if !ok {
		return optionInfo{}, fmt.Errorf("%w: unknown option %s", ErrBadArg, opt)
	}
	if info.kind != want {
		return optionInfo{}, fmt.Errorf("%w: option %s holds %s, not %s", ErrBadArg, opt, info.kind, want)
	}
	return info, nil
}

func (e *Entry) check() error {
	if e == nil {
		return fmt.Errorf("%w: no config entry specified", ErrBadArg)
	}
	if e.file == nil || e.file.kf == nil {
		return fmt.Errorf("%w: no key file available in entry", ErrBadArg)
	}
	return nil
}

func (e *Entry) section() *ini.Section {
	return e.file.kf.Section(e.id)
}

// raw returns the stored text of key and whether it is present.
func (e *Entry) raw(key string) (string, bool) {
	sec := e.section()
	if !sec.HasKey(key) {
		return "", false
	}
	return sec.Key(key).String(), true
}

func notSet(opt Option) error {
	return fmt.Errorf("%w: value of option %s is not set", ErrNotSet, opt)
}

func badValue(opt Option, err error) error {
	return fmt.Errorf("%w: option %s: %v", ErrValue, opt, err)
}

// GetString returns the text value of opt. OptID yields the section name.
func (e *Entry) GetString(opt Option) (string, error) {
	info, err := lookupOption(opt, KindString)
	if err != nil {
		return "", err
	}
	if err := e.check(); err != nil {
		return "", err
	}
	if opt == OptID {
		return e.id, nil
	}
	raw, ok := e.raw(info.key)
	if !ok {
		if info.def != nil {
			s, _ := info.def.Text()
			return s, nil
		}
		return "", notSet(opt)
	}
	return raw, nil
}

// GetStringList returns the list value of opt. Elements are separated by
// any of space, comma, or semicolon and trimmed of surrounding whitespace.
func (e *Entry) GetStringList(opt Option) ([]string, error) {
	info, err := lookupOption(opt, KindStringList)
	if err != nil {
		return nil, err
	}
	if err := e.check(); err != nil {
		return nil, err
	}
	raw, ok := e.raw(info.key)
	if !ok {
		if info.def != nil {
			list, _ := info.def.List()
			return list, nil
		}
		return nil, notSet(opt)
	}
	return splitList(raw), nil
}

// GetBool returns the boolean value of opt. "1", "yes", and "true" read as
// true regardless of case; any other text reads as false.
func (e *Entry) GetBool(opt Option) (bool, error) {
	info, err := lookupOption(opt, KindBool)
	if err != nil {
		return false, err
	}
	if err := e.check(); err != nil {
		return false, err
	}
	raw, ok := e.raw(info.key)
	if !ok {
		if info.def != nil {
			b, _ := info.def.Bool()
			return b, nil
		}
		return false, notSet(opt)
	}
	return parseBool(raw), nil
}

// GetInt returns the 32-bit signed value of opt.
func (e *Entry) GetInt(opt Option) (int32, error) {
	info, err := lookupOption(opt, KindInt)
	if err != nil {
		return 0, err
	}
	if err := e.check(); err != nil {
		return 0, err
	}
	raw, ok := e.raw(info.key)
	if !ok {
		if info.def != nil {
			n, _ := info.def.Int()
			return n, nil
		}
		return 0, notSet(opt)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, badValue(opt, fmt.Errorf("cannot parse %q as an integer", raw))
	}
	return int32(n), nil
}

// GetInt64 returns the 64-bit signed value of opt. Interval options accept
// a unit suffix (s, m, h, d) and report seconds.
func (e *Entry) GetInt64(opt Option) (int64, error) {
	info, err := lookupOption(opt, KindInt64)
	if err != nil {
		return 0, err
	}
	if err := e.check(); err != nil {
		return 0, err
	}
	raw, ok := e.raw(info.key)
	if !ok {
		if info.def != nil {
			n, _ := info.def.Int64()
			return n, nil
		}
		return 0, notSet(opt)
	}
	n, err := unitconv.Interval(raw)
	if err != nil {
		return 0, badValue(opt, err)
	}
	return n, nil
}

// GetUint64 returns the 64-bit unsigned value of opt. Bandwidth options
// accept a unit suffix (k, m, g, base 1024) and report bytes.
func (e *Entry) GetUint64(opt Option) (uint64, error) {
	info, err := lookupOption(opt, KindUint64)
	if err != nil {
		return 0, err
	}
	if err := e.check(); err != nil {
		return 0, err
	}
	raw, ok := e.raw(info.key)
	if !ok {
		if info.def != nil {
			n, _ := info.def.Uint64()
			return n, nil
		}
		return 0, notSet(opt)
	}
	n, err := unitconv.Bandwidth(raw)
	if err != nil {
		return 0, badValue(opt, err)
	}
	return n, nil
}

// GetIPResolve returns the IP resolve mode of opt.
func (e *Entry) GetIPResolve(opt Option) (IPResolve, error) {
	info, err := lookupOption(opt, KindIPResolve)
	if err != nil {
		return IPResolveWhatever, err
	}
	if err := e.check(); err != nil {
		return IPResolveWhatever, err
	}
	raw, ok := e.raw(info.key)
	if !ok {
		if info.def != nil {
			r, _ := info.def.IPResolve()
			return r, nil
		}
		return IPResolveWhatever, notSet(opt)
	}
	r, ok := parseIPResolve(strings.ToLower(raw))
	if !ok {
		return IPResolveWhatever, badValue(opt, fmt.Errorf("unknown ip_resolve value %q", raw))
	}
	return r, nil
}

// setTarget validates a write: the id is read-only and the option must hold
// the requested kind.
func (e *Entry) setTarget(opt Option, want Kind) (optionInfo, error) {
	if opt == OptID {
		return optionInfo{}, fmt.Errorf("%w: %s is a read-only option", ErrBadOptionArg, OptID)
	}
	info, err := lookupOption(opt, want)
	if err != nil {
		return optionInfo{}, err
	}
	if err := e.check(); err != nil {
		return optionInfo{}, err
	}
	return info, nil
}

// SetString stores a text value. An empty value removes the key; unset and
// explicitly empty are never distinguished.
func (e *Entry) SetString(opt Option, value string) error {
	info, err := e.setTarget(opt, KindString)
	if err != nil {
		return err
	}
	if value == "" {
		e.section().DeleteKey(info.key)
		return nil
	}
	e.section().Key(info.key).SetValue(value)
	return nil
}

// SetStringList stores a list value joined with ';'. An empty or nil list
// removes the key.
func (e *Entry) SetStringList(opt Option, list []string) error {
	info, err := e.setTarget(opt, KindStringList)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		e.section().DeleteKey(info.key)
		return nil
	}
	e.section().Key(info.key).SetValue(strings.Join(list, ";"))
	return nil
}

// SetBool stores a boolean in canonical "true"/"false" form.
func (e *Entry) SetBool(opt Option, value bool) error {
	info, err := e.setTarget(opt, KindBool)
	if err != nil {
		return err
	}
	e.section().Key(info.key).SetValue(strconv.FormatBool(value))
	return nil
}

// SetInt stores a 32-bit signed value.
func (e *Entry) SetInt(opt Option, value int32) error {
	info, err := e.setTarget(opt, KindInt)
	if err != nil {
		return err
	}
	e.section().Key(info.key).SetValue(strconv.FormatInt(int64(value), 10))
	return nil
}

// SetInt64 stores a 64-bit signed value in plain seconds.
func (e *Entry) SetInt64(opt Option, value int64) error {
	info, err := e.setTarget(opt, KindInt64)
	if err != nil {
		return err
	}
	e.section().Key(info.key).SetValue(strconv.FormatInt(value, 10))
	return nil
}

// SetUint64 stores a 64-bit unsigned value in plain bytes.
func (e *Entry) SetUint64(opt Option, value uint64) error {
	info, err := e.setTarget(opt, KindUint64)
	if err != nil {
		return err
	}
	e.section().Key(info.key).SetValue(strconv.FormatUint(value, 10))
	return nil
}

// SetIPResolve stores an IP resolve mode as its canonical word.
func (e *Entry) SetIPResolve(opt Option, value IPResolve) error {
	info, err := e.setTarget(opt, KindIPResolve)
	if err != nil {
		return err
	}
	switch value {
	case IPResolveWhatever, IPResolveV4, IPResolveV6:
	default:
		return fmt.Errorf("%w: unknown ip resolve mode %d", ErrBadArg, int(value))
	}
	e.section().Key(info.key).SetValue(value.String())
	return nil
}

// Get returns the value of opt as a tagged union.
func (e *Entry) Get(opt Option) (Value, error) {
	info, ok := optionTable[opt]
	if !ok {
		return Value{}, fmt.Errorf("%w: unknown option %s", ErrBadArg, opt)
	}
	switch info.kind {
	case KindString:
		s, err := e.GetString(opt)
		if err != nil {
			return Value{}, err
		}
		return StringValue(s), nil
	case KindStringList:
		list, err := e.GetStringList(opt)
		if err != nil {
			return Value{}, err
		}
		return ListValue(list), nil
	case KindBool:
		b, err := e.GetBool(opt)
		if err != nil {
			return Value{}, err
		}
		return BoolValue(b), nil
	case KindInt:
		n, err := e.GetInt(opt)
		if err != nil {
			return Value{}, err
		}
		return IntValue(n), nil
	case KindInt64:
		n, err := e.GetInt64(opt)
		if err != nil {
			return Value{}, err
		}
		return Int64Value(n), nil
	case KindUint64:
		n, err := e.GetUint64(opt)
		if err != nil {
			return Value{}, err
		}
		return Uint64Value(n), nil
	case KindIPResolve:
		r, err := e.GetIPResolve(opt)
		if err != nil {
			return Value{}, err
		}
		return IPResolveValue(r), nil
	default:
		return Value{}, fmt.Errorf("%w: unknown option kind %s", ErrBadArg, info.kind)
	}
}

// Set stores value under opt. The value's kind must match the option's.
func (e *Entry) Set(opt Option, value Value) error {
	if opt == OptID {
		return fmt.Errorf("%w: %s is a read-only option", ErrBadOptionArg, OptID)
	}
	info, ok := optionTable[opt]
	if !ok {
		return fmt.Errorf("%w: unknown option %s", ErrBadArg, opt)
	}
	if value.Kind() != info.kind {
		return fmt.Errorf("%w: option %s holds %s, not %s", ErrBadArg, opt, info.kind, value.Kind())
	}
	switch info.kind {
	case KindString:
		s, _ := value.Text()
		return e.SetString(opt, s)
	case KindStringList:
		list, _ := value.List()
		return e.SetStringList(opt, list)
	case KindBool:
		b, _ := value.Bool()
		return e.SetBool(opt, b)
	case KindInt:
		n, _ := value.Int()
		return e.SetInt(opt, n)
	case KindInt64:
		n, _ := value.Int64()
		return e.SetInt64(opt, n)
	case KindUint64:
		n, _ := value.Uint64()
		return e.SetUint64(opt, n)
	case KindIPResolve:
		r, _ := value.IPResolve()
		return e.SetIPResolve(opt, r)
	default:
		return fmt.Errorf("%w: unknown option kind %s", ErrBadArg, info.kind)
	}
}

func parseBool(raw string) bool {
	switch strings.ToLower(raw) {
	case "1", "yes", "true":
		return true
	default:
		return false
	}
}

func splitList(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == ',' || r == ';'
	})
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}
